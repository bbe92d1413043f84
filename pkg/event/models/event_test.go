package models

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func TestNewEvent(t *testing.T) {
	g := NewWithT(t)
	tm := time.UnixMilli(123)
	e := NewEvent("test", "l1", tm, 42)
	g.Expect(e.EventType()).To(Equal("test"))
	g.Expect(e.EventTime()).To(Equal(tm))
	g.Expect(e.Subject()).To(Equal("l1"))
	g.Expect(e.Attributes).To(Equal(42))
	g.Expect(e.String()).To(Equal("test(l1)"))
}
