package timezone_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/diafit-org/summaries/timezone"
)

var _ = Describe("Load", func() {
	It("resolves IANA names", func() {
		loc, err := timezone.Load("Europe/Berlin")
		Expect(err).ToNot(HaveOccurred())
		Expect(loc.String()).To(Equal("Europe/Berlin"))
	})

	It("returns the same location for repeated lookups", func() {
		first, err := timezone.Load("America/New_York")
		Expect(err).ToNot(HaveOccurred())
		second, err := timezone.Load("America/New_York")
		Expect(err).ToNot(HaveOccurred())
		Expect(first).To(BeIdenticalTo(second))
	})

	It("resolves the empty name to UTC", func() {
		loc, err := timezone.Load("")
		Expect(err).ToNot(HaveOccurred())
		Expect(loc).To(Equal(time.UTC))
	})

	It("fails for unknown names", func() {
		_, err := timezone.Load("Atlantis/Central")
		Expect(err).To(HaveOccurred())
	})
})
