package blog_service

import (
	"strings"
	"testing"

	"pet-blog-api/inout"
	"pet-blog-api/model/blog_model"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildPostFilter(t *testing.T) {
	cases := []struct {
		name     string
		filter   PostFilter
		expected bson.M
	}{
		{
			"no filter",
			PostFilter{},
			bson.M{"isPublished": true},
		},
		{
			"all category means no filter",
			PostFilter{Category: "all"},
			bson.M{"isPublished": true},
		},
		{
			"category",
			PostFilter{Category: "funny"},
			bson.M{"isPublished": true, "category": "funny"},
		},
		{
			"tag",
			PostFilter{Tag: "puppy"},
			bson.M{"isPublished": true, "tags": bson.M{"$in": []string{"puppy"}}},
		},
		{
			"category and tag",
			PostFilter{Category: "training", Tag: "agility"},
			bson.M{
				"isPublished": true,
				"category":    "training",
				"tags":        bson.M{"$in": []string{"agility"}},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := buildPostFilter(c.filter)
			if len(got) != len(c.expected) {
				t.Fatalf("expected %v, got %v", c.expected, got)
			}
			for k, v := range c.expected {
				gv, ok := got[k]
				if !ok {
					t.Fatalf("missing key %q in %v", k, got)
				}
				if inner, isM := v.(bson.M); isM {
					gm, isGM := gv.(bson.M)
					if !isGM {
						t.Fatalf("key %q: expected bson.M, got %T", k, gv)
					}
					tags := inner["$in"].([]string)
					gotTags := gm["$in"].([]string)
					if len(tags) != len(gotTags) || tags[0] != gotTags[0] {
						t.Fatalf("key %q: expected %v, got %v", k, inner, gm)
					}
				} else if gv != v {
					t.Fatalf("key %q: expected %v, got %v", k, v, gv)
				}
			}
		})
	}
}

func strPtr(s string) *string { return &s }

func TestBuildPostPatch(t *testing.T) {
	// 缺席字段不进入补丁
	patch := buildPostPatch(inout.UpdatePostReq{})
	if len(patch) != 0 {
		t.Fatalf("empty request should produce empty patch, got %v", patch)
	}

	published := false
	images := []blog_model.MediaItem{{URL: "https://cdn.example.com/a.jpg"}}
	patch = buildPostPatch(inout.UpdatePostReq{
		Title:       strPtr("  New title  "),
		Category:    strPtr("health"),
		Images:      &images,
		IsPublished: &published,
	})

	if len(patch) != 4 {
		t.Fatalf("expected 4 entries, got %v", patch)
	}
	if patch["title"] != "New title" {
		t.Fatalf("title should be trimmed, got %q", patch["title"])
	}
	if patch["category"] != "health" {
		t.Fatalf("unexpected category: %v", patch["category"])
	}
	if patch["isPublished"] != false {
		t.Fatalf("unexpected isPublished: %v", patch["isPublished"])
	}
	if _, ok := patch["content"]; ok {
		t.Fatalf("content must not appear in patch")
	}
}

func TestValidatePostPatch(t *testing.T) {
	cases := []struct {
		name string
		req  inout.UpdatePostReq
		ok   bool
	}{
		{"empty patch", inout.UpdatePostReq{}, true},
		{"valid title", inout.UpdatePostReq{Title: strPtr("ok")}, true},
		{"blank title", inout.UpdatePostReq{Title: strPtr("  ")}, false},
		{"long title", inout.UpdatePostReq{Title: strPtr(strings.Repeat("a", 201))}, false},
		{"long content", inout.UpdatePostReq{Content: strPtr(strings.Repeat("a", 2001))}, false},
		{"bad category", inout.UpdatePostReq{Category: strPtr("gaming")}, false},
		{"good category", inout.UpdatePostReq{Category: strPtr("other")}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			verr := validatePostPatch(c.req)
			if c.ok && verr != nil {
				t.Fatalf("expected ok, got: %v", verr)
			}
			if !c.ok && verr == nil {
				t.Fatalf("expected validation error")
			}
		})
	}

	// 19张图片超出上限
	tooMany := make([]blog_model.MediaItem, 19)
	if verr := validatePostPatch(inout.UpdatePostReq{Images: &tooMany}); verr == nil {
		t.Fatalf("expected validation error for 19 images")
	}
}

func TestNormalizePaging(t *testing.T) {
	cases := []struct {
		page, pageSize         int
		wantPage, wantPageSize int
	}{
		{1, 10, 1, 10},
		{0, 0, 1, DefaultPostPageSize},
		{-3, -1, 1, DefaultPostPageSize},
		{2, 25, 2, 25},
	}
	for i, c := range cases {
		page, pageSize := normalizePaging(c.page, c.pageSize, DefaultPostPageSize)
		if page != c.wantPage || pageSize != c.wantPageSize {
			t.Fatalf("case %d: got (%d, %d), want (%d, %d)", i, page, pageSize, c.wantPage, c.wantPageSize)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{24, 12, 2},
		{25, 12, 3},
	}
	for i, c := range cases {
		if got := totalPages(c.total, c.pageSize); got != c.want {
			t.Fatalf("case %d: totalPages(%d, %d) = %d, want %d", i, c.total, c.pageSize, got, c.want)
		}
	}
}
