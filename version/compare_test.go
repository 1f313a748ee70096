package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Should detect newer versions", func() {
			c, err := Compare("1.2.3", "1.2.2")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 1)

			c, err = Compare("2.0.0", "1.9.9")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 1)
		})

		Convey("Should detect older versions", func() {
			c, err := Compare("0.1.0", "0.2.0")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, -1)
		})

		Convey("Should treat equal versions as equal", func() {
			c, err := Compare("1.0.0", "v1.0.0")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 0)
		})

		Convey("Should reject malformed versions", func() {
			_, err := Compare("not-a-version", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}
