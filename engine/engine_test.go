package engine

import (
	"testing"

	"github.com/Neicx/kana-dojo/key"
	"github.com/Neicx/kana-dojo/verb"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestBuiltin(t *testing.T) {
	Convey("Given the builtin engine", t, func() {
		e, err := loadBuiltin()
		So(err, ShouldBeNil)
		So(e, ShouldNotBeNil)

		Convey("It reports its identity", func() {
			So(e.ID(), ShouldEqual, BuiltinID)
			So(e.Name(), ShouldEqual, BuiltinID)
		})

		Convey("When searching by dictionary form", func() {
			verbs, err := e.Search("食べる")
			So(err, ShouldBeNil)
			So(verbs, ShouldNotBeEmpty)
			So(verbs[0].Dictionary, ShouldEqual, "食べる")
		})

		Convey("When searching by romaji", func() {
			verbs, err := e.Search("taberu")
			So(err, ShouldBeNil)
			So(verbs, ShouldNotBeEmpty)
			So(verbs[0].Romaji, ShouldEqual, "taberu")
		})

		Convey("When searching by meaning", func() {
			verbs, err := e.Search("to drink")
			So(err, ShouldBeNil)
			So(verbs, ShouldNotBeEmpty)
			So(verbs[0].Dictionary, ShouldEqual, "飲む")
		})

		Convey("A blank query matches nothing", func() {
			verbs, err := e.Search("   ")
			So(err, ShouldBeNil)
			So(verbs, ShouldBeEmpty)
		})

		Convey("The search limit caps results", func() {
			viper.Set(key.SearchLimit, 1)
			defer viper.Set(key.SearchLimit, 0)

			verbs, err := e.Search("u")
			So(err, ShouldBeNil)
			So(len(verbs), ShouldBeLessThanOrEqualTo, 1)
		})

		Convey("When conjugating a known verb", func() {
			verbs, err := e.Search("suru")
			So(err, ShouldBeNil)
			So(verbs, ShouldNotBeEmpty)

			conjugation, err := e.Conjugate(verbs[0])
			So(err, ShouldBeNil)
			So(conjugation.EngineID, ShouldEqual, BuiltinID)
			So(conjugation.Categories, ShouldNotBeEmpty)

			polite, ok := conjugation.Category("polite")
			So(ok, ShouldBeTrue)
			So(polite.Forms[0].Value, ShouldEqual, "します")
		})

		Convey("Conjugating an unknown verb fails", func() {
			_, err := e.Conjugate(&verb.Verb{Dictionary: "泳ぐ"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestClosest(t *testing.T) {
	Convey("Given a set of candidate verbs", t, func() {
		candidates := []*verb.Verb{
			{Dictionary: "書く", Reading: "かく", Romaji: "kaku"},
			{Dictionary: "買う", Reading: "かう", Romaji: "kau"},
			{Dictionary: "来る", Reading: "くる", Romaji: "kuru"},
		}

		Convey("The closest match to the query comes first", func() {
			ordered := Closest("kau", candidates)
			So(ordered[0].Romaji, ShouldEqual, "kau")
		})

		Convey("Ordering does not mutate the input", func() {
			_ = Closest("kuru", candidates)
			So(candidates[0].Romaji, ShouldEqual, "kaku")
		})

		Convey("Case is ignored", func() {
			ordered := Closest("KAKU", candidates)
			So(ordered[0].Romaji, ShouldEqual, "kaku")
		})
	})
}

func TestDescriptors(t *testing.T) {
	Convey("Builtins always contains the embedded engine", t, func() {
		descriptors := Builtins()
		So(descriptors, ShouldHaveLength, 1)
		So(descriptors[0].ID, ShouldEqual, BuiltinID)
		So(descriptors[0].IsCustom, ShouldBeFalse)

		Convey("And it can be looked up by name", func() {
			d, ok := Get(BuiltinID)
			So(ok, ShouldBeTrue)
			So(d.String(), ShouldEqual, BuiltinID)
		})

		Convey("Unknown names are not found", func() {
			_, ok := Get("no-such-engine")
			So(ok, ShouldBeFalse)
		})
	})
}
