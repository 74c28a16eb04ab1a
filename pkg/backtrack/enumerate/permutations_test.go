package enumerate_test

import (
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/operator-framework/backtrack/pkg/backtrack/engine"
	"github.com/operator-framework/backtrack/pkg/backtrack/enumerate"
)

var _ = Describe("Permutations", func() {
	It("should list orderings of distinct values", func() {
		Expect(enumerate.Permutations([]int{1, 2, 3})).To(Equal([][]int{
			{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1},
		}))
	})

	It("should keep the caller's order rather than sorting", func() {
		Expect(enumerate.Permutations([]string{"b", "a"})).To(Equal([][]string{{"b", "a"}, {"a", "b"}}))
	})

	It("should return the single empty ordering of an empty pool", func() {
		Expect(enumerate.Permutations([]int{})).To(Equal([][]int{{}}))
	})

	DescribeTable("should produce n! bijective rearrangements",
		func(n int) {
			pool := indexes(n)
			result := enumerate.Permutations(pool)
			Expect(result).To(HaveLen(factorial(n)))
			Expect(distinct(result)).To(BeTrue())
			for _, p := range result {
				Expect(slices.Sorted(slices.Values(p))).To(Equal(pool))
			}
		},
		Entry("1", 1),
		Entry("4", 4),
		Entry("6", 6),
	)

	It("should stop after the limit", func() {
		Expect(enumerate.Permutations([]int{1, 2, 3}, engine.WithLimit(2))).To(Equal([][]int{
			{1, 2, 3}, {1, 3, 2},
		}))
	})
})

var _ = Describe("PermutationsWithDup", func() {
	It("should list each distinct ordering once", func() {
		Expect(enumerate.PermutationsWithDup([]int{1, 1, 2})).To(Equal([][]int{
			{1, 1, 2}, {1, 2, 1}, {2, 1, 1},
		}))
	})

	It("should sort the pool without touching the caller's slice", func() {
		pool := []int{2, 1, 1}
		Expect(enumerate.PermutationsWithDup(pool)).To(HaveLen(3))
		Expect(pool).To(Equal([]int{2, 1, 1}))
	})

	DescribeTable("should produce n! / prod(dup!) orderings",
		func(pool []int, expected int) {
			result := enumerate.PermutationsWithDup(pool)
			Expect(result).To(HaveLen(expected))
			Expect(distinct(result)).To(BeTrue())
			want := slices.Sorted(slices.Values(pool))
			for _, p := range result {
				Expect(slices.Sorted(slices.Values(p))).To(Equal(want))
			}
		},
		Entry("all equal", []int{7, 7, 7}, 1),
		Entry("two pairs", []int{1, 2, 1, 2}, factorial(4)/(factorial(2)*factorial(2))),
		Entry("mixed", []int{3, 1, 3, 2, 3}, factorial(5)/factorial(3)),
		Entry("distinct", []int{4, 2, 3}, factorial(3)),
	)

	It("should work on strings", func() {
		Expect(enumerate.PermutationsWithDup([]string{"b", "a", "a"})).To(Equal([][]string{
			{"a", "a", "b"}, {"a", "b", "a"}, {"b", "a", "a"},
		}))
	})
})
