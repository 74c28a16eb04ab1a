package enumerate_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/operator-framework/backtrack/internal/satcheck"
	"github.com/operator-framework/backtrack/pkg/backtrack/enumerate"
)

var _ = Describe("Subsets", func() {
	It("should emit at every node", func() {
		Expect(enumerate.Subsets([]int{1, 2, 3})).To(Equal([][]int{
			{}, {1}, {1, 2}, {1, 2, 3}, {1, 3}, {2}, {2, 3}, {3},
		}))
	})

	It("should contain the empty subset exactly once", func() {
		result := enumerate.Subsets([]int{4, 5, 6, 7})
		Expect(result).To(HaveLen(16))
		empty := 0
		for _, p := range result {
			if len(p) == 0 {
				empty++
			}
		}
		Expect(empty).To(Equal(1))
	})

	It("should treat equal values at different positions as distinct", func() {
		Expect(enumerate.Subsets([]int{2, 2})).To(HaveLen(4))
	})

	It("should agree with the SAT oracle", func() {
		expected, err := satcheck.Selections(6, 0, 6)
		Expect(err).ToNot(HaveOccurred())
		Expect(expected).To(HaveLen(64))
		Expect(lexicographic(enumerate.Subsets(indexes(6)))).To(Equal(expected))
	})
})

var _ = Describe("SubsetsWithDup", func() {
	It("should suppress duplicate sub-multisets", func() {
		Expect(enumerate.SubsetsWithDup([]int{1, 2, 2})).To(Equal([][]int{
			{}, {1}, {1, 2}, {1, 2, 2}, {2}, {2, 2},
		}))
	})

	It("should sort before searching", func() {
		Expect(enumerate.SubsetsWithDup([]int{2, 1, 2})).To(Equal(enumerate.SubsetsWithDup([]int{1, 2, 2})))
	})

	It("should count prod(multiplicity + 1) sub-multisets", func() {
		// 1 x3, 2 x2, 5 x1
		result := enumerate.SubsetsWithDup([]int{5, 1, 2, 1, 2, 1})
		Expect(result).To(HaveLen(4 * 3 * 2))
		Expect(distinct(result)).To(BeTrue())
	})

	It("should return only the empty subset for an empty pool", func() {
		Expect(enumerate.SubsetsWithDup([]int(nil))).To(Equal([][]int{{}}))
	})
})
