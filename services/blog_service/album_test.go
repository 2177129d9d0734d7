package blog_service

import (
	"strings"
	"testing"

	"pet-blog-api/inout"
)

func boolPtr(b bool) *bool { return &b }

func TestBuildAlbumPatch(t *testing.T) {
	patch := buildAlbumPatch(inout.UpdateAlbumReq{})
	if len(patch) != 0 {
		t.Fatalf("empty request should produce empty patch, got %v", patch)
	}

	tags := []string{"summer", "beach"}
	patch = buildAlbumPatch(inout.UpdateAlbumReq{
		Title:    strPtr(" Holiday "),
		Tags:     &tags,
		IsPublic: boolPtr(false),
	})

	if len(patch) != 3 {
		t.Fatalf("expected 3 entries, got %v", patch)
	}
	if patch["title"] != "Holiday" {
		t.Fatalf("title should be trimmed, got %q", patch["title"])
	}
	if patch["isPublic"] != false {
		t.Fatalf("unexpected isPublic: %v", patch["isPublic"])
	}
	if _, ok := patch["description"]; ok {
		t.Fatalf("description must not appear in patch")
	}
}

func TestValidateAlbumPatch(t *testing.T) {
	cases := []struct {
		name string
		req  inout.UpdateAlbumReq
		ok   bool
	}{
		{"empty patch", inout.UpdateAlbumReq{}, true},
		{"valid", inout.UpdateAlbumReq{Title: strPtr("Trip")}, true},
		{"blank title", inout.UpdateAlbumReq{Title: strPtr("   ")}, false},
		{"long title", inout.UpdateAlbumReq{Title: strPtr(strings.Repeat("a", 101))}, false},
		{"long description", inout.UpdateAlbumReq{Description: strPtr(strings.Repeat("a", 501))}, false},
		{"empty description ok", inout.UpdateAlbumReq{Description: strPtr("")}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			verr := validateAlbumPatch(c.req)
			if c.ok && verr != nil {
				t.Fatalf("expected ok, got: %v", verr)
			}
			if !c.ok && verr == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
