package services

import "testing"

func TestExtractPublicID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{
			"https://res.cloudinary.com/demo/image/upload/v1234567890/hood-eatery/menu/burger.jpg",
			"hood-eatery/menu/burger",
		},
		{
			"https://res.cloudinary.com/demo/image/upload/v1/top-level.png",
			"top-level",
		},
		{"", ""},
		{"https://example.com/no-version/image.jpg", ""},
		{"https://res.cloudinary.com/demo/image/upload/v99/noextension", ""},
	}

	for _, tc := range cases {
		if got := ExtractPublicID(tc.url); got != tc.want {
			t.Errorf("ExtractPublicID(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}
