package pathspec

import "testing"

// TestMatch_Basics covers exact names, single-segment wildcards, ?, nested
// paths and double-star patterns at the start, middle and end.
func TestMatch_Basics(t *testing.T) {
	cases := []struct {
		pat  string
		path string
		want bool
	}{
		// exact
		{"foo.txt", "foo.txt", true},
		{"foo.txt", "bar.txt", false},

		// wildcard *
		{"*.txt", "foo.txt", true},
		{"*.txt", "bar.log", false},
		{"foo*", "foobar", true},
		{"foo*", "barfoo", false},

		// single-char ?
		{"file?.txt", "file1.txt", true},
		{"file?.txt", "file12.txt", false},

		// nested paths
		{"dir/*.txt", "dir/foo.txt", true},
		{"dir/*.txt", "dir/sub/foo.txt", false},

		// double-star recursive
		{"dir/**", "dir/foo.txt", true},
		{"dir/**", "dir/sub/deep/foo.txt", true},
		{"dir/**", "other/foo.txt", false},

		// trailing ** also matches the anchor directory itself
		{"dir/**", "dir", true},

		// double-star in middle
		{"dir/**/foo.txt", "dir/foo.txt", true},
		{"dir/**/foo.txt", "dir/a/b/c/foo.txt", true},
		{"dir/**/foo.txt", "dir/bar/baz.txt", false},

		// mixed wildcards
		{"**/*.txt", "a.txt", true},
		{"**/*.txt", "a/b/c.txt", true},
		{"**/*.txt", "a/b/c.log", false},

		// prefix with **/ pattern
		{"**/foo.txt", "foo.txt", true},
		{"**/foo.txt", "a/b/c/foo.txt", true},
		{"**/foo.txt", "a/b/c/bar.txt", false},

		// pattern with static prefix
		{"config/*.yml", "config/test.yml", true},
		{"config/*.yml", "config/sub/test.yml", false},
	}

	for _, tt := range cases {
		got := Match(tt.pat, tt.path)
		if got != tt.want {
			t.Errorf("pattern %q path %q => got %v, want %v", tt.pat, tt.path, got, tt.want)
		}
	}
}

func TestMatch_WeirdCases(t *testing.T) {
	cases := []struct {
		pat, path string
		want      bool
	}{
		{"**", "foo/bar", true},
		{"**", "", true},

		{"foo/**/bar", "foo/bar", true},
		{"foo/**/bar", "foo/x/y/z/bar", true},
		{"foo/**/bar", "bar/foo/bar", false},
	}

	for _, tt := range cases {
		got := Match(tt.pat, tt.path)
		if got != tt.want {
			t.Errorf("pattern %q path %q => got %v, want %v", tt.pat, tt.path, got, tt.want)
		}
	}
}
