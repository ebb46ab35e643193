package tether

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type testKey int

const (
	userKey testKey = iota
	extraKey
)

func TestContext(t *testing.T) {
	Convey("Context data", t, func() {
		Convey("Absent keys return absent", func() {
			ctx := New("test")
			So(ctx.Value(userKey), ShouldBeNil)
			val, ok := ctx.ValueOK(userKey)
			So(ok, ShouldBeFalse)
			So(val, ShouldBeNil)
		})

		Convey("WithValue derives without mutating", func() {
			root := New("test")
			child := WithValue(root, userKey, "alice")
			So(child.Value(userKey), ShouldEqual, "alice")
			So(root.Value(userKey), ShouldBeNil)
			_, ok := root.ValueOK(userKey)
			So(ok, ShouldBeFalse)
		})

		Convey("Nearer writes shadow farther writes", func() {
			ctx := WithValue(Background(), userKey, "alice")
			ctx = WithValue(ctx, extraKey, 1)
			ctx = WithValue(ctx, userKey, "bob")
			So(ctx.Value(userKey), ShouldEqual, "bob")
			So(ctx.Value(extraKey), ShouldEqual, 1)
		})

		Convey("Stored nil is present, not absent", func() {
			ctx := WithValue(Background(), userKey, nil)
			val, ok := ctx.ValueOK(userKey)
			So(ok, ShouldBeTrue)
			So(val, ShouldBeNil)
		})

		Convey("Keys compare by identity, not stringification", func() {
			type alpha string
			type beta string
			ctx := WithValue(Background(), alpha("k"), 1)
			ctx = WithValue(ctx, beta("k"), 2)
			So(ctx.Value(alpha("k")), ShouldEqual, 1)
			So(ctx.Value(beta("k")), ShouldEqual, 2)
			So(ctx.Value("k"), ShouldBeNil)
		})

		Convey("Lookup crosses cancel nodes", func() {
			ctx := WithValue(Background(), userKey, "alice")
			child, cancel := WithCancel(ctx)
			defer cancel()
			So(child.Value(userKey), ShouldEqual, "alice")
		})

		Convey("Nil key panics", func() {
			So(func() { WithValue(Background(), nil, 1) }, ShouldPanic)
		})

		Convey("Non-comparable key panics", func() {
			So(func() { WithValue(Background(), []int{1}, 1) }, ShouldPanic)
		})

		Convey("Nil parent roots at Background", func() {
			ctx := WithValue(nil, userKey, "alice")
			So(ctx.Value(userKey), ShouldEqual, "alice")
		})
	})

	Convey("Setter form", t, func() {
		setUser := func(ctx Context, item interface{}) Context {
			return WithValue(ctx, userKey, item)
		}

		Convey("With dispatches through the setter", func() {
			ctx := With(Background(), setUser, "alice")
			So(ctx.Value(userKey), ShouldEqual, "alice")
		})

		Convey("Nil setter panics", func() {
			So(func() { With(Background(), nil, "alice") }, ShouldPanic)
		})

		Convey("Nil parent roots at Background", func() {
			ctx := With(nil, setUser, "alice")
			So(ctx.Value(userKey), ShouldEqual, "alice")
		})
	})

	Convey("Roots", t, func() {
		Convey("Background is a singleton", func() {
			So(Background(), ShouldEqual, Background())
			So(Background().Canceler(), ShouldBeNil)
			So(Background().Canceled(), ShouldBeFalse)
			So(Background().Err(), ShouldBeNil)
			So(Background().Name(), ShouldEqual, "Background")
		})

		Convey("New names an empty root", func() {
			ctx := New("job")
			So(ctx.Name(), ShouldEqual, "job")
			So(ctx.Canceler(), ShouldBeNil)
			So(ctx.Value(userKey), ShouldBeNil)
		})

		Convey("WithCancel(nil) is a cancelable root", func() {
			ctx, cancel := WithCancel(nil)
			So(ctx.Canceler(), ShouldNotBeNil)
			So(ctx.Canceled(), ShouldBeFalse)
			cancel()
			So(ctx.Canceled(), ShouldBeTrue)
		})
	})

	Convey("Diagnostics", t, func() {
		ctx := WithValue(Background(), userKey, "alice")
		child, cancel := WithCancel(ctx)
		defer cancel()
		So(child.Name(), ShouldEqual, "Cancel")
		So(ctx.Name(), ShouldEqual, "Value")
		So(child.String(), ShouldEqual, "tether.Background.WithValue(0).WithCancel")
	})
}
