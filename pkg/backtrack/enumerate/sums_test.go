package enumerate_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/operator-framework/backtrack/pkg/backtrack/enumerate"
)

var _ = Describe("CombinationSum", func() {
	It("should reuse candidates in depth-first order", func() {
		Expect(enumerate.CombinationSum([]int{2, 3, 5}, 8)).To(Equal([][]int{
			{2, 2, 2, 2}, {2, 3, 3}, {3, 5},
		}))
	})

	It("should sort an unsorted pool", func() {
		Expect(enumerate.CombinationSum([]int{7, 3, 6, 2}, 7)).To(Equal([][]int{
			{2, 2, 3}, {7},
		}))
	})

	It("should not duplicate results for repeated pool values", func() {
		result := enumerate.CombinationSum([]int{2, 2, 3, 3}, 6)
		Expect(result).To(Equal([][]int{{2, 2, 2}, {3, 3}}))
	})

	It("should ignore non-positive candidates", func() {
		Expect(enumerate.CombinationSum([]int{0, -1, 2}, 4)).To(Equal([][]int{{2, 2}}))
	})

	It("should accept the empty multiset for a zero target", func() {
		Expect(enumerate.CombinationSum([]int{1, 2}, 0)).To(Equal([][]int{{}}))
	})

	It("should yield nothing for unreachable targets", func() {
		Expect(enumerate.CombinationSum([]int{2, 4}, 7)).To(BeEmpty())
		Expect(enumerate.CombinationSum([]int{1, 2}, -3)).To(BeEmpty())
		Expect(enumerate.CombinationSum(nil, 3)).To(BeEmpty())
	})

	It("should only emit paths that sum to the target", func() {
		result := enumerate.CombinationSum([]int{2, 3, 4, 5, 6}, 12)
		Expect(result).ToNot(BeEmpty())
		for _, p := range result {
			Expect(sum(p)).To(Equal(12))
		}
		Expect(distinct(canonical(result))).To(BeTrue())
	})
})

var _ = Describe("CombinationSumWithDup", func() {
	It("should use each position once and suppress sibling duplicates", func() {
		Expect(enumerate.CombinationSumWithDup([]int{10, 1, 2, 7, 6, 1, 5}, 8)).To(Equal([][]int{
			{1, 1, 6}, {1, 2, 5}, {1, 7}, {2, 6},
		}))
	})

	It("should allow an equal value deeper on the same branch", func() {
		Expect(enumerate.CombinationSumWithDup([]int{2, 5, 2, 1, 2}, 5)).To(Equal([][]int{
			{1, 2, 2}, {5},
		}))
	})

	It("should handle negative candidates without pruning them", func() {
		Expect(enumerate.CombinationSumWithDup([]int{-2, -3}, -5)).To(Equal([][]int{{-3, -2}}))
		Expect(enumerate.CombinationSumWithDup([]int{-1, 3, 4}, 2)).To(Equal([][]int{{-1, 3}}))
	})

	It("should never emit the same multiset twice", func() {
		result := enumerate.CombinationSumWithDup([]int{1, 1, 1, 2, 2, 3, 3, 4}, 6)
		Expect(result).ToNot(BeEmpty())
		Expect(distinct(canonical(result))).To(BeTrue())
		for _, p := range result {
			Expect(sum(p)).To(Equal(6))
		}
	})

	It("should not mutate the caller's pool", func() {
		pool := []int{3, 1, 2}
		enumerate.CombinationSumWithDup(pool, 3)
		Expect(pool).To(Equal([]int{3, 1, 2}))
	})
})

var _ = Describe("CombinationSumK", func() {
	It("should find three digits summing to 7", func() {
		Expect(enumerate.CombinationSum3(3, 7)).To(Equal([][]int{{1, 2, 4}}))
	})

	It("should find three digits summing to 9", func() {
		Expect(enumerate.CombinationSum3(3, 9)).To(Equal([][]int{{1, 2, 6}, {1, 3, 5}, {2, 3, 4}}))
	})

	It("should yield nothing when the sum is out of reach", func() {
		Expect(enumerate.CombinationSum3(4, 1)).To(BeEmpty())
		Expect(enumerate.CombinationSum3(10, 45)).To(BeEmpty())
	})

	It("should honor k on arbitrary pools", func() {
		result := enumerate.CombinationSumK([]int{1, 1, 2, 3, 4}, 2, 5)
		Expect(result).To(Equal([][]int{{1, 4}, {2, 3}}))
	})
})
