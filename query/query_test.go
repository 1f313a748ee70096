package query

import (
	"testing"

	"github.com/Neicx/kana-dojo/filesystem"
	"github.com/Neicx/kana-dojo/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given remembered verb queries", t, func() {
		So(Remember("taberu", 1), ShouldBeNil)
		So(Remember("tsukuru", 10), ShouldBeNil)

		Convey("Suggestions are sorted by rank", func() {
			s := SuggestMany("t")
			So(len(s), ShouldBeGreaterThanOrEqualTo, 2)
			So(s[0], ShouldEqual, "tsukuru")
		})

		Convey("Suggest returns the top match", func() {
			So(Suggest("tsu").MustGet(), ShouldEqual, "tsukuru")
		})

		Convey("No match yields no suggestion", func() {
			So(Suggest("xyzzy").IsAbsent(), ShouldBeTrue)
		})

		Convey("Japanese queries are remembered as-is", func() {
			So(Remember("食べる", 1), ShouldBeNil)

			s := SuggestMany("食べ")
			So(s, ShouldContain, "食べる")
		})

		Convey("Suggestions can be disabled", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			defer viper.Set(key.SearchShowQuerySuggestions, true)

			So(SuggestMany("t"), ShouldBeEmpty)
		})

		Convey("Input is sanitized", func() {
			So(sanitize("  TABERU  "), ShouldEqual, "taberu")
		})

		Convey("Blank queries are not remembered", func() {
			So(Remember("   ", 1), ShouldBeNil)
			So(SuggestMany(""), ShouldNotContain, "")
		})
	})
}
