package navigator_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/imamik/wizflow/pkg/navigator"
)

var _ = Describe("Navigator", func() {
	var (
		nav *navigator.Navigator
		err error
	)

	Context("with a linear A -> B -> C wizard", func() {
		BeforeEach(func() {
			nav, err = navigator.New(navigator.Config{
				InitialState: "A",
				NextSteps: map[navigator.StepID]navigator.NextStepRule{
					"A": navigator.Literal("B"),
					"B": navigator.Literal("C"),
				},
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("starts at A with back navigation disabled", func() {
			Expect(nav.Current()).To(Equal(navigator.StepID("A")))
			Expect(nav.IsAtRoot()).To(BeTrue())
		})

		It("walks forward and back", func() {
			Expect(nav.Advance()).To(Equal(navigator.Outcome{Kind: navigator.Advanced, Step: "B"}))
			Expect(nav.IsAtRoot()).To(BeFalse())
			Expect(nav.Advance()).To(Equal(navigator.Outcome{Kind: navigator.Advanced, Step: "C"}))
			Expect(nav.Retreat()).To(Equal(navigator.Outcome{Kind: navigator.Retreated, Step: "B"}))
			Expect(nav.Current()).To(Equal(navigator.StepID("B")))
		})

		It("follows repeated resolution from the initial state", func() {
			var expected []navigator.StepID
			probe, _ := navigator.New(navigator.Config{
				InitialState: "A",
				NextSteps: map[navigator.StepID]navigator.NextStepRule{
					"A": navigator.Literal("B"),
					"B": navigator.Literal("C"),
				},
			})
			expected = append(expected, probe.Current())
			for probe.HasNext() {
				probe.Advance()
				expected = append(expected, probe.Current())
			}

			for nav.HasNext() {
				nav.Advance()
			}
			Expect(nav.History()).To(Equal(expected))
		})

		It("never pops below the root", func() {
			for range 3 {
				Expect(nav.Retreat().Kind).To(Equal(navigator.AtRoot))
			}
			Expect(nav.Depth()).To(Equal(1))
		})
	})

	Context("with a validator on the first step", func() {
		var displayed []string

		BeforeEach(func() {
			displayed = nil
			nav, err = navigator.New(navigator.Config{
				InitialState: "V1",
				NextSteps: map[navigator.StepID]navigator.NextStepRule{
					"V1": navigator.Literal("V2"),
				},
				Validations: map[navigator.StepID]navigator.Validator{
					"V1": func() string { return "please fill field" },
				},
				DisplayValidations: func(msg string) { displayed = append(displayed, msg) },
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("blocks and leaves history unchanged", func() {
			out := nav.Advance()
			Expect(out.Kind).To(Equal(navigator.Blocked))
			Expect(out.Message).To(Equal("please fill field"))
			Expect(nav.History()).To(Equal([]navigator.StepID{"V1"}))
			Expect(displayed).To(ConsistOf("please fill field"))
		})
	})

	Context("with no next-step mapping", func() {
		var finishCalls int

		BeforeEach(func() {
			finishCalls = 0
			nav, err = navigator.New(navigator.Config{
				InitialState: "X",
				NextSteps:    map[navigator.StepID]navigator.NextStepRule{},
				Finish:       func() { finishCalls++ },
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("finishes once per call and stays parked", func() {
			Expect(nav.Advance().Kind).To(Equal(navigator.Finished))
			Expect(finishCalls).To(Equal(1))
			Expect(nav.Advance().Kind).To(Equal(navigator.Finished))
			Expect(finishCalls).To(Equal(2))
			Expect(nav.History()).To(Equal([]navigator.StepID{"X"}))
		})
	})

	Context("with a resolver", func() {
		BeforeEach(func() {
			nav, err = navigator.New(navigator.Config{
				InitialState: "A",
				NextSteps: map[navigator.StepID]navigator.NextStepRule{
					"A": navigator.Resolve(func() (navigator.StepID, bool) { return "C", true }),
				},
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("resolves and pushes the computed step", func() {
			next, ok := nav.ResolveNextStep()
			Expect(ok).To(BeTrue())
			Expect(next).To(Equal(navigator.StepID("C")))
			Expect(nav.Advance()).To(Equal(navigator.Outcome{Kind: navigator.Advanced, Step: "C"}))
			Expect(nav.History()).To(Equal([]navigator.StepID{"A", "C"}))
		})
	})
})
