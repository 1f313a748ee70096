package verb

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestVerbString(t *testing.T) {
	Convey("Verb.String", t, func() {
		Convey("Should include the reading when it differs", func() {
			v := &Verb{Dictionary: "食べる", Reading: "たべる"}
			So(v.String(), ShouldEqual, "食べる (たべる)")
		})

		Convey("Should omit a redundant reading", func() {
			v := &Verb{Dictionary: "する", Reading: "する"}
			So(v.String(), ShouldEqual, "する")
		})
	})
}

func TestConjugationCategory(t *testing.T) {
	Convey("Conjugation.Category", t, func() {
		c := &Conjugation{
			Verb: &Verb{Dictionary: "飲む"},
			Categories: []Category{
				{Name: "Plain", Forms: []Form{{Name: "Non-past", Value: "飲む"}}},
				{Name: "Polite", Forms: []Form{{Name: "Non-past", Value: "飲みます"}}},
			},
		}

		Convey("Should find categories case-insensitively", func() {
			cat, ok := c.Category("polite")
			So(ok, ShouldBeTrue)
			So(cat.Forms[0].Value, ShouldEqual, "飲みます")
		})

		Convey("Should report missing categories", func() {
			_, ok := c.Category("causative")
			So(ok, ShouldBeFalse)
		})

		Convey("Flatten should preserve order", func() {
			forms := c.Flatten()
			So(forms, ShouldHaveLength, 2)
			So(forms[0].Value, ShouldEqual, "飲む")
			So(forms[1].Value, ShouldEqual, "飲みます")
		})
	})
}

func TestPermalink(t *testing.T) {
	Convey("Permalink", t, func() {
		Convey("Should round-trip lookup state", func() {
			p := Permalink{Verb: "食べる", Engine: "builtin"}
			restored, err := ParsePermalink(p.Encode())
			So(err, ShouldBeNil)
			So(restored, ShouldResemble, p)
		})

		Convey("Should round-trip a history list", func() {
			p := Permalink{History: []string{"食べる", "飲む", "行く"}}
			restored, err := ParsePermalink(p.Encode())
			So(err, ShouldBeNil)
			So(restored.History, ShouldResemble, p.History)
		})

		Convey("Should accept a bare query string", func() {
			restored, err := ParsePermalink("verb=%E9%A3%9F%E3%81%B9%E3%82%8B&engine=builtin")
			So(err, ShouldBeNil)
			So(restored.Verb, ShouldEqual, "食べる")
			So(restored.Engine, ShouldEqual, "builtin")
		})

		Convey("Should reject malformed query escapes", func() {
			_, err := ParsePermalink("kanadojo:?verb=%zz")
			So(err, ShouldNotBeNil)
		})
	})
}
