package stride_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/stride"
)

var _ = Describe("step acceptance protocol", func() {
	collect := func(w stride.Walker) [][2]float64 {
		var intervals [][2]float64
		for {
			step, err := w.Next()
			Expect(err).NotTo(HaveOccurred())
			if step == nil {
				break
			}
			intervals = append(intervals, [2]float64{step.Begin(), step.End()})
			step.Succeeded()
		}
		return intervals
	}

	Describe("fixed stepping", func() {
		It("tiles the range exactly, clamping the last step", func() {
			st, err := stride.NewFixed(0, 10, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(collect(st)).To(Equal([][2]float64{{0, 3}, {3, 6}, {6, 9}, {9, 10}}))
			Expect(st.Current()).To(Equal(10.0))
		})
	})

	Describe("error feedback", func() {
		It("rejects a step whose error exceeds tolerance and retries smaller", func() {
			st, err := stride.NewScaled(0, 1, 0.5)
			Expect(err).NotTo(HaveOccurred())

			step, _ := st.Next()
			Expect(step.End()).To(Equal(0.5))
			Expect(step.Succeeded(stride.WithError(2))).To(BeFalse())
			Expect(st.Current()).To(BeZero())

			retry, _ := st.Next()
			Expect(retry.Begin()).To(BeZero())
			Expect(retry.Size()).To(Equal(0.25))
		})

		It("accepts when no error is reported", func() {
			st, _ := stride.NewScaled(0, 1, 0.5)
			step, _ := st.Next()
			Expect(step.Succeeded()).To(BeTrue())
			Expect(st.Current()).To(Equal(0.5))
		})

		It("never grows by more than the growth factor", func() {
			st, _ := stride.NewScaled(0, 1000, 1)
			last := 0.0
			for {
				step, err := st.Next()
				Expect(err).NotTo(HaveOccurred())
				if step == nil {
					break
				}
				if last > 0 {
					Expect(step.Size()).To(BeNumerically("<=", last*1.2+1e-12))
				}
				last = step.Size()
				step.Succeeded(stride.WithError(0.5))
			}
		})
	})

	Describe("non-convergence", func() {
		It("ends the traversal once the size would fall below the floor", func() {
			st, _ := stride.NewScaled(0, 1, 0.5, stride.WithMinStep(0.01))
			for {
				step, err := st.Next()
				if err != nil {
					Expect(err).To(MatchError(stride.ErrNonConvergence))
					Expect(st.Current()).To(BeNumerically("<", 1))
					return
				}
				Expect(step).NotTo(BeNil())
				step.Succeeded(stride.WithError(100))
			}
		})
	})

	Describe("stale steps", func() {
		It("panics when a verdict is reported twice", func() {
			st, _ := stride.NewFixed(0, 10, 3)
			step, _ := st.Next()
			step.Succeeded()
			Expect(func() { step.Succeeded() }).To(PanicWith(MatchError(stride.ErrStaleStep)))
		})

		It("panics when a verdict arrives after a newer step was issued", func() {
			st, _ := stride.NewScaled(0, 10, 1)
			first, _ := st.Next()
			first.Succeeded()
			_, err := st.Next()
			Expect(err).NotTo(HaveOccurred())
			Expect(func() { first.Succeeded() }).To(PanicWith(MatchError(stride.ErrStaleStep)))
		})
	})

	Describe("checkpoints", func() {
		It("yields exactly the configured intervals", func() {
			st, err := stride.NewCheckpoint(0, []float64{1, 10, 100})
			Expect(err).NotTo(HaveOccurred())
			Expect(collect(st)).To(Equal([][2]float64{{0, 1}, {1, 10}, {10, 100}}))
		})

		It("rejects a non-increasing checkpoint sequence", func() {
			_, err := stride.NewCheckpoint(0, []float64{1, 10, 5})
			Expect(err).To(MatchError(stride.ErrConfig))
		})
	})
})
