package custom

import (
	"testing"

	"github.com/Neicx/kana-dojo/verb"
	. "github.com/smartystreets/goconvey/convey"
	lua "github.com/yuin/gopher-lua"
)

func TestVerbFromTable(t *testing.T) {
	Convey("verbFromTable", t, func() {
		L := lua.NewState()
		defer L.Close()

		Convey("Should extract verb from valid Lua table", func() {
			tbl := L.NewTable()
			tbl.RawSetString("dictionary", lua.LString("泳ぐ"))
			tbl.RawSetString("reading", lua.LString("およぐ"))
			tbl.RawSetString("romaji", lua.LString("oyogu"))
			tbl.RawSetString("class", lua.LString("godan"))

			v, err := verbFromTable(tbl)
			So(err, ShouldBeNil)
			So(v.Dictionary, ShouldEqual, "泳ぐ")
			So(v.Reading, ShouldEqual, "およぐ")
			So(v.Romaji, ShouldEqual, "oyogu")
			So(v.Class, ShouldEqual, verb.Godan)
		})

		Convey("Should fail when the dictionary form is missing", func() {
			tbl := L.NewTable()
			tbl.RawSetString("reading", lua.LString("およぐ"))

			_, err := verbFromTable(tbl)
			So(err, ShouldNotBeNil)
		})

		Convey("Should default the reading to the dictionary form", func() {
			tbl := L.NewTable()
			tbl.RawSetString("dictionary", lua.LString("わかる"))

			v, err := verbFromTable(tbl)
			So(err, ShouldBeNil)
			So(v.Reading, ShouldEqual, "わかる")
		})

		Convey("Should handle comma-separated meanings", func() {
			tbl := L.NewTable()
			tbl.RawSetString("dictionary", lua.LString("泳ぐ"))
			tbl.RawSetString("meanings", lua.LString("to swim, to float"))

			v, err := verbFromTable(tbl)
			So(err, ShouldBeNil)
			So(v.Meanings, ShouldHaveLength, 2)
			So(v.Meanings[0], ShouldEqual, "to swim")
		})
	})
}

func TestFormFromTable(t *testing.T) {
	Convey("formFromTable", t, func() {
		L := lua.NewState()
		defer L.Close()

		Convey("Should extract a form with name and value", func() {
			tbl := L.NewTable()
			tbl.RawSetString("name", lua.LString("Past"))
			tbl.RawSetString("value", lua.LString("泳いだ"))
			tbl.RawSetString("romaji", lua.LString("oyoida"))

			form, err := formFromTable(tbl)
			So(err, ShouldBeNil)
			So(form.Name, ShouldEqual, "Past")
			So(form.Value, ShouldEqual, "泳いだ")
			So(form.Romaji, ShouldEqual, "oyoida")
		})

		Convey("Should fail when the value is missing", func() {
			tbl := L.NewTable()
			tbl.RawSetString("name", lua.LString("Past"))

			_, err := formFromTable(tbl)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestCategoryFromTable(t *testing.T) {
	Convey("categoryFromTable", t, func() {
		L := lua.NewState()
		defer L.Close()

		newForm := func(name, value string) *lua.LTable {
			tbl := L.NewTable()
			tbl.RawSetString("name", lua.LString(name))
			tbl.RawSetString("value", lua.LString(value))
			return tbl
		}

		Convey("Should extract a category with its forms in order", func() {
			forms := L.NewTable()
			forms.Append(newForm("Non-past", "泳ぐ"))
			forms.Append(newForm("Past", "泳いだ"))

			tbl := L.NewTable()
			tbl.RawSetString("name", lua.LString("Plain"))
			tbl.RawSetString("forms", forms)

			category, err := categoryFromTable(tbl)
			So(err, ShouldBeNil)
			So(category.Name, ShouldEqual, "Plain")
			So(category.Forms, ShouldHaveLength, 2)
			So(category.Forms[0].Name, ShouldEqual, "Non-past")
			So(category.Forms[1].Value, ShouldEqual, "泳いだ")
		})

		Convey("Should fail when no forms are present", func() {
			tbl := L.NewTable()
			tbl.RawSetString("name", lua.LString("Plain"))
			tbl.RawSetString("forms", L.NewTable())

			_, err := categoryFromTable(tbl)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestVerbToTable(t *testing.T) {
	Convey("verbToTable", t, func() {
		L := lua.NewState()
		defer L.Close()

		v := &verb.Verb{
			Dictionary: "泳ぐ",
			Reading:    "およぐ",
			Romaji:     "oyogu",
			Class:      verb.Godan,
		}

		tbl := verbToTable(L, v)
		So(tbl.RawGetString("dictionary").String(), ShouldEqual, "泳ぐ")
		So(tbl.RawGetString("reading").String(), ShouldEqual, "およぐ")
		So(tbl.RawGetString("class").String(), ShouldEqual, "godan")
	})
}
