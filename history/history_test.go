package history

import (
	"testing"

	"github.com/Neicx/kana-dojo/key"
	"github.com/Neicx/kana-dojo/verb"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	viper.Set(key.HistorySaveOnLookup, true)
	viper.Set(key.HistoryLimit, 100)
}

func TestHistory(t *testing.T) {
	Convey("Given a verb", t, func() {
		Clear()

		taberu := &verb.Verb{Dictionary: "食べる", Reading: "たべる", Romaji: "taberu"}

		Convey("When it is looked up", func() {
			Save(taberu, "builtin")

			Convey("It appears in the session history", func() {
				saved := Get()
				So(saved, ShouldHaveLength, 1)
				So(saved[0].Dictionary, ShouldEqual, "食べる")
				So(saved[0].EngineID, ShouldEqual, "builtin")
			})

			Convey("Looking it up again does not duplicate it", func() {
				Save(&verb.Verb{Dictionary: "飲む"}, "builtin")
				Save(taberu, "builtin")

				saved := Get()
				So(saved, ShouldHaveLength, 2)
				So(saved[len(saved)-1].Dictionary, ShouldEqual, "食べる")
			})

			Convey("It can be removed", func() {
				Remove(&SavedLookup{Dictionary: "食べる", EngineID: "builtin"})
				So(Get(), ShouldBeEmpty)
			})
		})

		Convey("When saving is disabled", func() {
			viper.Set(key.HistorySaveOnLookup, false)
			defer viper.Set(key.HistorySaveOnLookup, true)

			Save(taberu, "builtin")
			So(Get(), ShouldBeEmpty)
		})

		Convey("When the history limit is exceeded", func() {
			viper.Set(key.HistoryLimit, 2)
			defer viper.Set(key.HistoryLimit, 100)

			Save(&verb.Verb{Dictionary: "書く"}, "builtin")
			Save(&verb.Verb{Dictionary: "読む"}, "builtin")
			Save(&verb.Verb{Dictionary: "話す"}, "builtin")

			saved := Get()
			So(saved, ShouldHaveLength, 2)
			So(saved[0].Dictionary, ShouldEqual, "読む")
			So(saved[1].Dictionary, ShouldEqual, "話す")
		})
	})
}

func TestPermalinkExchange(t *testing.T) {
	Convey("Given a session with lookups", t, func() {
		Clear()
		Save(&verb.Verb{Dictionary: "食べる"}, "builtin")
		Save(&verb.Verb{Dictionary: "飲む"}, "builtin")

		Convey("Export captures them in order", func() {
			p := Export()
			So(p.History, ShouldResemble, []string{"食べる", "飲む"})
		})

		Convey("An exported permalink can be imported into a fresh session", func() {
			p := Export()
			Clear()

			Import(p, "builtin")
			saved := Get()
			So(saved, ShouldHaveLength, 2)
			So(saved[0].Dictionary, ShouldEqual, "食べる")
		})

		Convey("Importing skips entries already present", func() {
			Import(verb.Permalink{History: []string{"食べる", "行く"}}, "builtin")

			saved := Get()
			So(saved, ShouldHaveLength, 3)
			So(saved[len(saved)-1].Dictionary, ShouldEqual, "行く")
		})
	})
}
