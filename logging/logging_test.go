package logging

import (
	"bytes"
	"log"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"euphoria.io/tether"
)

func TestLogging(t *testing.T) {
	Convey("Logging context", t, func() {
		Convey("Derived contexts carry the logger", func() {
			buf := &bytes.Buffer{}
			ctx := LoggingContext(tether.Background(), buf, "[test] ")
			Logger(ctx).Printf("hello")
			So(buf.String(), ShouldContainSubstring, "[test] ")
			So(buf.String(), ShouldContainSubstring, "hello")
		})

		Convey("The parent is untouched", func() {
			buf := &bytes.Buffer{}
			parent := tether.New("root")
			LoggingContext(parent, buf, "[test] ")
			So(Logger(parent), ShouldNotBeNil)
			So(buf.String(), ShouldBeEmpty)
		})

		Convey("A bare chain falls back to a default logger", func() {
			So(Logger(tether.Background()), ShouldNotBeNil)
		})

		Convey("The setter form threads through tether.With", func() {
			buf := &bytes.Buffer{}
			logger := log.New(buf, "[setter] ", 0)
			ctx := tether.With(tether.Background(), SetLogger, logger)
			So(Logger(ctx), ShouldEqual, logger)
		})

		Convey("Cancel nodes do not hide the logger", func() {
			buf := &bytes.Buffer{}
			ctx := LoggingContext(tether.Background(), buf, "[test] ")
			child, cancel := tether.WithCancel(ctx)
			defer cancel()
			So(Logger(child), ShouldEqual, Logger(ctx))
		})
	})
}
