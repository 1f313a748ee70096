package jisho

import (
	"encoding/json"
	"testing"

	"github.com/Neicx/kana-dojo/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func entry(slug, word, reading string, definitions ...string) *Entry {
	raw := lo.Must(json.Marshal(map[string]any{
		"slug":     slug,
		"japanese": []map[string]string{{"word": word, "reading": reading}},
		"senses":   []map[string]any{{"english_definitions": definitions}},
	}))

	e := new(Entry)
	lo.Must0(json.Unmarshal(raw, e))
	return e
}

func TestEntry(t *testing.T) {
	Convey("Given a dictionary entry", t, func() {
		taberu := entry("食べる", "食べる", "たべる", "to eat")

		Convey("Name prefers the written form", func() {
			So(taberu.Name(), ShouldEqual, "食べる")
		})

		Convey("Name falls back to the reading", func() {
			kanaOnly := entry("する", "", "する", "to do")
			So(kanaOnly.Name(), ShouldEqual, "する")
		})

		Convey("Reading returns the kana reading", func() {
			So(taberu.Reading(), ShouldEqual, "たべる")
		})

		Convey("Gloss joins the first sense", func() {
			multi := entry("見る", "見る", "みる", "to see", "to watch")
			So(multi.Gloss(), ShouldEqual, "to see; to watch")
		})

		Convey("An empty entry degrades to its slug", func() {
			bare := &Entry{Slug: "bare"}
			So(bare.Name(), ShouldEqual, "bare")
			So(bare.Reading(), ShouldBeEmpty)
			So(bare.Gloss(), ShouldBeEmpty)
		})
	})
}

func TestDistance(t *testing.T) {
	Convey("Distance uses the nearest representation", t, func() {
		taberu := entry("taberu-slug", "食べる", "たべる", "to eat")

		So(distance("食べる", taberu), ShouldEqual, 0)
		So(distance("たべる", taberu), ShouldEqual, 0)
		So(distance("食べた", taberu), ShouldEqual, 1)
	})
}

func TestRelationCache(t *testing.T) {
	Convey("Given a query relation", t, func() {
		taberu := entry("食べる", "食べる", "たべる", "to eat")

		So(SetRelation("Taberu ", taberu), ShouldBeNil)

		Convey("The relation key is normalized", func() {
			So(relationCacher.Get("taberu").MustGet(), ShouldEqual, "食べる")
		})

		Convey("The entry itself is cached by slug", func() {
			cached := slugCacher.Get("食べる")
			So(cached.IsPresent(), ShouldBeTrue)
			So(cached.MustGet().Name(), ShouldEqual, "食べる")
		})
	})
}
