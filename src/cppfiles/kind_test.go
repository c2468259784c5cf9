package cppfiles

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		want Kind
	}{
		{"foo.h", KindHeader},
		{"foo.hpp", KindHeader},
		{"include/deep/foo.hpp", KindHeader},
		{"foo.c", KindSource},
		{"foo.cc", KindSource},
		{"foo.cpp", KindSource},
		{"foo.cxx", KindSource},
		{"CMakeLists.txt", KindBuildList},
		{"sub/dir/CMakeLists.txt", KindBuildList},
		{"foo.txt", KindUnknown},
		{"foo", KindUnknown},
		{"foo.HPP", KindUnknown}, // case-sensitive
		{"", KindUnknown},
	}

	for _, tc := range cases {
		if got := Classify(tc.name); got != tc.want {
			t.Errorf("Classify(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIsCpp(t *testing.T) {
	if !IsCpp(KindHeader) || !IsCpp(KindSource) {
		t.Error("header and source must be C++ kinds")
	}
	if IsCpp(KindUnknown) || IsCpp(KindBuildList) {
		t.Error("unknown and build-list must not be C++ kinds")
	}
}

func TestFilterCpp(t *testing.T) {
	in := []string{"a.cpp", "b.txt", "c.hpp", "CMakeLists.txt"}
	got := FilterCpp(in)

	want := []string{"a.cpp", "c.hpp"}
	if len(got) != len(want) {
		t.Fatalf("FilterCpp = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FilterCpp[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
