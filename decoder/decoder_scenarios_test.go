package decoder_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // dot imports are fine for Ginkgo
	. "github.com/onsi/gomega"    //nolint:revive // dot imports are fine for Ginkgo

	"github.com/cosmos/abidecoder/decoder"
	"github.com/cosmos/abidecoder/registry"
	"github.com/cosmos/abidecoder/types"
)

var _ = Describe("Decoder", func() {
	var (
		reg *registry.Registry
		dec *decoder.Decoder
	)

	BeforeEach(func() {
		reg = registry.New()
		Expect(reg.AddJSON([]byte(testABI))).To(Succeed())
		dec = decoder.New(reg)
	})

	Describe("DecodeMethod", func() {
		It("decodes an ERC-20 transfer", func() {
			data := "0xa9059cbb" + word(strings.ToLower(toAddr.Hex()[2:])) + word("3e8")

			res, err := dec.DecodeMethod(data)
			Expect(err).NotTo(HaveOccurred())
			Expect(res).NotTo(BeNil())
			Expect(res.Name).To(Equal("transfer"))
			Expect(res.Params).To(HaveLen(2))
			Expect(res.Params[0]).To(Equal(types.DecodedParam{Name: "to", Type: "address", Value: types.NewScalar(lower(toAddr))}))
			Expect(res.Params[1]).To(Equal(types.DecodedParam{Name: "amount", Type: "uint256", Value: types.NewScalar("1000")}))
		})

		It("returns nothing for an unregistered selector", func() {
			res, err := dec.DecodeMethod("0x12345678" + word("1"))
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeNil())
		})

		It("stops matching once the entry is removed", func() {
			entries, err := registry.ParseEntries([]byte(testABI))
			Expect(err).NotTo(HaveOccurred())
			reg.Remove(entries[:1])

			res, err := dec.DecodeMethod("0xa9059cbb" + word("1") + word("2"))
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeNil())
		})
	})

	Describe("DecodeLogs", func() {
		It("decodes a Transfer log with padded address topics", func() {
			res, err := dec.DecodeLogs([]types.Log{transferLog()})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(HaveLen(1))

			event := res[0]
			Expect(event.Name).To(Equal("Transfer"))
			Expect(event.Address).To(Equal(contract))

			from, ok := event.Param("from")
			Expect(ok).To(BeTrue())
			Expect(from.Value.Scalar()).To(HaveLen(types.AddressHexLength))
			Expect(from.Value.Scalar()).To(Equal(lower(fromAddr)))
		})

		It("reads a hex uint256 value in base 16", func() {
			// data is always whole words, a short hex value can only come from a topic
			reg.Add([]types.SchemaEntry{{
				Type: types.TypeEvent,
				Name: "Ping",
				Inputs: []types.TypeDescriptor{
					{Name: "value", Type: "uint256", Indexed: true},
				},
			}})

			res, err := dec.DecodeLogs([]types.Log{{Topics: []string{eventTopic("Ping(uint256)"), "0x1a"}, Data: "0x"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(HaveLen(1))
			Expect(res[0].Events[0].Value).To(Equal(types.NewScalar("26")))
		})

		It("excludes logs without topics", func() {
			res, err := dec.DecodeLogs([]types.Log{{Address: contract, Data: "0x"}, transferLog()})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(HaveLen(1))
			Expect(res[0].Name).To(Equal("Transfer"))
		})

		It("keeps a nil placeholder for unknown topics", func() {
			unknown := types.Log{Topics: []string{"0x" + word("ff")}, Data: "0x"}

			res, err := dec.DecodeLogs([]types.Log{unknown, transferLog(), unknown})
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(HaveLen(3))
			Expect(res[0]).To(BeNil())
			Expect(res[1]).NotTo(BeNil())
			Expect(res[2]).To(BeNil())
		})

		It("fails when an indexed topic is missing", func() {
			l := transferLog()
			l.Topics = l.Topics[:2]

			_, err := dec.DecodeLogs([]types.Log{l})
			Expect(err).To(MatchError(types.ErrCodec))
		})
	})
})
