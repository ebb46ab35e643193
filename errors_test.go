package tether

import (
	"context"
	"errors"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type flakyError struct{}

func (flakyError) Error() string  { return "flaky" }
func (flakyError) Canceled() bool { return true }

func TestErrors(t *testing.T) {
	Convey("Taxonomy", t, func() {
		Convey("Every deadline error is a canceled error", func() {
			err := NewDeadline(nil)
			So(IsDeadline(err), ShouldBeTrue)
			So(IsCanceled(err), ShouldBeTrue)
		})

		Convey("A canceled error is not a deadline error", func() {
			err := NewCanceled(nil)
			So(IsCanceled(err), ShouldBeTrue)
			So(IsDeadline(err), ShouldBeFalse)
		})

		Convey("Default messages", func() {
			So(NewCanceled(nil).Error(), ShouldEqual, "Operation was canceled")
			So(NewDeadline(nil).Error(), ShouldEqual, "Context deadline was exceeded")
		})

		Convey("Arbitrary errors are neither", func() {
			err := fmt.Errorf("just broken")
			So(IsCanceled(err), ShouldBeFalse)
			So(IsDeadline(err), ShouldBeFalse)
		})

		Convey("Nil is neither", func() {
			So(IsCanceled(nil), ShouldBeFalse)
			So(IsDeadline(nil), ShouldBeFalse)
		})
	})

	Convey("Normalization", t, func() {
		Convey("String reasons become the message", func() {
			So(NewCanceled("user walked away").Error(), ShouldEqual, "user walked away")
			So(NewDeadline("too slow").Error(), ShouldEqual, "too slow")
		})

		Convey("Other values are stringified", func() {
			So(NewCanceled(42).Error(), ShouldEqual, "42")
		})

		Convey("Already-satisfying errors keep their identity", func() {
			orig := NewCanceled("original")
			So(NewCanceled(orig), ShouldEqual, orig)
			dl := NewDeadline("original")
			So(NewDeadline(dl), ShouldEqual, dl)
			So(NewCanceled(dl), ShouldEqual, dl)
		})

		Convey("Foreign errors are wrapped, preserving the inner value", func() {
			inner := fmt.Errorf("broken pipe")
			err := NewCanceled(inner)
			So(IsCanceled(err), ShouldBeTrue)
			So(errors.Is(err, inner), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "broken pipe")
		})
	})

	Convey("Decoration", t, func() {
		Convey("AsCanceled is identity-preserving", func() {
			err := NewCanceled("stop")
			So(AsCanceled(err), ShouldEqual, err)
		})

		Convey("AsCanceled wraps foreign errors", func() {
			inner := fmt.Errorf("io timeout")
			err := AsCanceled(inner)
			So(err, ShouldNotEqual, inner)
			So(IsCanceled(err), ShouldBeTrue)
			So(errors.Is(err, inner), ShouldBeTrue)
		})

		Convey("AsDeadline upgrades a canceled error", func() {
			base := NewCanceled("stop")
			err := AsDeadline(base)
			So(IsDeadline(err), ShouldBeTrue)
			So(errors.Is(err, base), ShouldBeTrue)
		})

		Convey("Nil decorates to nil", func() {
			So(AsCanceled(nil), ShouldBeNil)
			So(AsDeadline(nil), ShouldBeNil)
		})

		Convey("Classification survives wrapping", func() {
			err := fmt.Errorf("while reading: %w", NewDeadline(nil))
			So(IsDeadline(err), ShouldBeTrue)
			So(IsCanceled(err), ShouldBeTrue)
		})

		Convey("Foreign types can opt in via the marker method", func() {
			So(IsCanceled(flakyError{}), ShouldBeTrue)
			So(AsCanceled(flakyError{}), ShouldResemble, flakyError{})
		})
	})

	Convey("Stdlib interop", t, func() {
		So(IsCanceled(context.Canceled), ShouldBeTrue)
		So(IsCanceled(context.DeadlineExceeded), ShouldBeTrue)
		So(IsDeadline(context.DeadlineExceeded), ShouldBeTrue)
		So(IsDeadline(context.Canceled), ShouldBeFalse)
	})
}
