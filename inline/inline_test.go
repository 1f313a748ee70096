package inline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Neicx/kana-dojo/verb"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWriteJson(t *testing.T) {
	Convey("writeJson", t, func() {
		Convey("Should produce valid JSON for an empty result list", func() {
			var buf bytes.Buffer
			opts := &Options{Query: "taberu", Json: true}
			err := writeJson(&buf, nil, opts)
			So(err, ShouldBeNil)

			var output Output
			err = json.Unmarshal(buf.Bytes(), &output)
			So(err, ShouldBeNil)
			So(output.Query, ShouldEqual, "taberu")
			So(output.Result, ShouldHaveLength, 0)
		})
	})
}

func TestParseVerbPicker(t *testing.T) {
	verbs := []*verb.Verb{
		{Dictionary: "食べる", Reading: "たべる", Romaji: "taberu"},
		{Dictionary: "飲む", Reading: "のむ", Romaji: "nomu"},
		{Dictionary: "行く", Reading: "いく", Romaji: "iku"},
	}

	Convey("ParseVerbPicker", t, func() {
		Convey("Should pick the first verb", func() {
			picker, err := ParseVerbPicker("first", "")
			So(err, ShouldBeNil)
			So(picker(verbs).Dictionary, ShouldEqual, "食べる")
		})

		Convey("Should pick the last verb", func() {
			picker, err := ParseVerbPicker("last", "")
			So(err, ShouldBeNil)
			So(picker(verbs).Dictionary, ShouldEqual, "行く")
		})

		Convey("Should pick an exact match by romaji", func() {
			picker, err := ParseVerbPicker("exact", "Nomu")
			So(err, ShouldBeNil)
			So(picker(verbs).Dictionary, ShouldEqual, "飲む")
		})

		Convey("Should clamp out-of-range indexes", func() {
			picker, err := ParseVerbPicker("index", "99")
			So(err, ShouldBeNil)
			So(picker(verbs).Dictionary, ShouldEqual, "行く")
		})

		Convey("Should reject unknown picker kinds", func() {
			_, err := ParseVerbPicker("weird", "")
			So(err, ShouldNotBeNil)
		})

		Convey("Should return nil when nothing matches", func() {
			picker, err := ParseVerbPicker("exact", "oyogu")
			So(err, ShouldBeNil)
			So(picker(verbs), ShouldBeNil)
		})
	})
}

func TestParseCategoryFilter(t *testing.T) {
	categories := []verb.Category{
		{Name: "Plain", Forms: []verb.Form{{Name: "Present", Value: "食べる"}}},
		{Name: "Polite", Forms: []verb.Form{{Name: "Present", Value: "食べます"}}},
		{Name: "Te-form", Forms: []verb.Form{{Name: "Te", Value: "食べて"}}},
	}

	Convey("ParseCategoryFilter", t, func() {
		Convey("Should keep everything for \"all\"", func() {
			filter, err := ParseCategoryFilter("all")
			So(err, ShouldBeNil)

			filtered, err := filter(categories)
			So(err, ShouldBeNil)
			So(filtered, ShouldHaveLength, 3)
		})

		Convey("Should select by comma-separated names", func() {
			filter, err := ParseCategoryFilter("plain, polite")
			So(err, ShouldBeNil)

			filtered, err := filter(categories)
			So(err, ShouldBeNil)
			So(filtered, ShouldHaveLength, 2)
			So(filtered[0].Name, ShouldEqual, "Plain")
		})

		Convey("Should select by substring", func() {
			filter, err := ParseCategoryFilter("@te@")
			So(err, ShouldBeNil)

			filtered, err := filter(categories)
			So(err, ShouldBeNil)
			So(filtered, ShouldHaveLength, 2)
		})

		Convey("Should fail when no names match", func() {
			filter, err := ParseCategoryFilter("causative")
			So(err, ShouldBeNil)

			_, err = filter(categories)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestWriteText(t *testing.T) {
	Convey("writeText", t, func() {
		var buf bytes.Buffer
		writeText(&buf, &Result{
			Engine: "builtin",
			Verb:   &verb.Verb{Dictionary: "飲む", Reading: "のむ", Romaji: "nomu", Meanings: []string{"to drink"}},
			Conjugation: &verb.Conjugation{
				Verb: &verb.Verb{Dictionary: "飲む"},
				Categories: []verb.Category{
					{Name: "Polite", Forms: []verb.Form{{Name: "Present", Value: "飲みます", Romaji: "nomimasu"}}},
				},
				EngineID: "builtin",
			},
		})

		out := buf.String()
		So(out, ShouldContainSubstring, "飲む (のむ)")
		So(out, ShouldContainSubstring, "to drink")
		So(out, ShouldContainSubstring, "Polite")
		So(out, ShouldContainSubstring, "Present: 飲みます nomimasu")
	})
}
