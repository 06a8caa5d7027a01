package cnf_test

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/relnet-dev/relnet/internal/cnf"
)

func TestCnf(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Cnf Suite")
}

var _ = Describe("Formula", func() {
	Describe("Write", func() {
		It("should serialize header, sampling set and clauses", func() {
			f := &cnf.Formula{
				NumVars:  4,
				Clauses:  [][]int{{1, 2}, {-1, 3, -4}, {2}},
				Sampling: []int{1, 2},
			}
			var buf bytes.Buffer
			Expect(f.Write(&buf)).To(Succeed())
			Expect(buf.String()).To(Equal("p cnf 4 3\nc ind 1 2 0\n1 2 0\n-1 3 -4 0\n2 0\n"))
		})

		It("should split long sampling sets over several c ind lines", func() {
			sampling := make([]int, 12)
			for i := range sampling {
				sampling[i] = i + 1
			}
			f := &cnf.Formula{NumVars: 12, Clauses: [][]int{{1}}, Sampling: sampling}
			var buf bytes.Buffer
			Expect(f.Write(&buf)).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("c ind 1 2 3 4 5 6 7 8 9 10 0\n"))
			Expect(buf.String()).To(ContainSubstring("c ind 11 12 0\n"))
		})

		It("should omit the sampling declaration when the set is empty", func() {
			f := &cnf.Formula{NumVars: 1, Clauses: [][]int{{1}}}
			var buf bytes.Buffer
			Expect(f.Write(&buf)).To(Succeed())
			Expect(buf.String()).To(Equal("p cnf 1 1\n1 0\n"))
		})
	})

	Describe("Parse", func() {
		It("should round-trip Write output", func() {
			f := &cnf.Formula{
				NumVars:  4,
				Clauses:  [][]int{{1, 2}, {-1, 3, -4}, {2}},
				Sampling: []int{1, 2},
			}
			var buf bytes.Buffer
			Expect(f.Write(&buf)).To(Succeed())
			parsed, err := cnf.Parse(&buf)
			Expect(err).ToNot(HaveOccurred())
			Expect(parsed).To(Equal(f))
		})

		It("should fail if there is no header", func() {
			_, err := cnf.Parse(strings.NewReader("1 2 3 0\n"))
			Expect(err).To(HaveOccurred())
		})

		It("should fail if a clause does not end with 0", func() {
			_, err := cnf.Parse(strings.NewReader("p cnf 3 1\n1 2 3\n"))
			Expect(err).To(HaveOccurred())
		})

		It("should fail on a literal outside the declared range", func() {
			_, err := cnf.Parse(strings.NewReader("p cnf 3 1\n1 2 -4 0\n"))
			Expect(err).To(HaveOccurred())
		})

		It("should fail if the clause count does not match the header", func() {
			_, err := cnf.Parse(strings.NewReader("p cnf 3 2\n1 2 3 0\n"))
			Expect(err).To(HaveOccurred())
		})

		It("should fail on a sampling id above the declared variable count", func() {
			_, err := cnf.Parse(strings.NewReader("p cnf 2 1\nc ind 1 3 0\n1 -2 0\n"))
			Expect(err).To(HaveOccurred())
		})

		It("should fail on a negative sampling id", func() {
			_, err := cnf.Parse(strings.NewReader("p cnf 2 1\nc ind -1 0\n1 -2 0\n"))
			Expect(err).To(HaveOccurred())
		})

		It("should ignore plain comments", func() {
			f, err := cnf.Parse(strings.NewReader("c just a note\np cnf 2 1\n1 -2 0\n"))
			Expect(err).ToNot(HaveOccurred())
			Expect(f.Clauses).To(Equal([][]int{{1, -2}}))
			Expect(f.Sampling).To(BeEmpty())
		})
	})

	Describe("Eval", func() {
		It("should evaluate clauses under a full assignment", func() {
			f := &cnf.Formula{NumVars: 2, Clauses: [][]int{{1, -2}, {-1, 2}}}
			Expect(f.Eval([]bool{false, false})).To(BeTrue())
			Expect(f.Eval([]bool{true, true})).To(BeTrue())
			Expect(f.Eval([]bool{true, false})).To(BeFalse())
			Expect(f.Eval([]bool{false, true})).To(BeFalse())
		})
	})
})
