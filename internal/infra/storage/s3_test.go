package storage

import (
	"regexp"
	"testing"
)

func TestObjectURL(t *testing.T) {
	cases := []struct {
		name, public, endpoint, want string
	}{
		{"public url wins", "https://cdn.hirely.app/", "http://minio:9000", "https://cdn.hirely.app/profiles/1/a.webp"},
		{"custom endpoint", "", "http://minio:9000", "http://minio:9000/media/profiles/1/a.webp"},
		{"aws", "", "", "https://media.s3.us-east-1.amazonaws.com/profiles/1/a.webp"},
	}

	for _, tc := range cases {
		got := ObjectURL(tc.public, tc.endpoint, "media", "us-east-1", "profiles/1/a.webp")
		if got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestProfileImageKey(t *testing.T) {
	re := regexp.MustCompile(`^profiles/42/[0-9a-f-]{36}\.webp$`)

	a, b := ProfileImageKey(42), ProfileImageKey(42)
	if !re.MatchString(a) {
		t.Errorf("unexpected key %s", a)
	}
	if a == b {
		t.Error("keys must be unique per upload")
	}
}
