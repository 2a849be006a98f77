package dtstext

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Profile defines characteristics for generated .dts documents.
type Profile struct {
	// Depth is the number of node levels below the root.
	// 0 = use default (3)
	Depth int

	// ChildrenPerNode is the fan-out at each level.
	// 0 = use default (4)
	ChildrenPerNode int

	// PropertiesPerNode is the maximum number of properties per node.
	// 0 = use default (6)
	PropertiesPerNode int

	// FlagPct is the fraction of properties written without a value.
	FlagPct float64

	// Comments interleaves "//" comment lines, which must be ignored.
	Comments bool

	// Seed for reproducibility (0 = fixed default seed)
	Seed uint64
}

var sampleValues = []string{
	`"okay"`,
	`"disabled"`,
	`<0x00>`,
	`<0x01 0x02 0x03>`,
	`"serial_a"`,
	`[00 11 22 33]`,
	`"nvidia,tegra234-sdhci", "nvidia,tegra186-sdhci"`,
	`<0x3e 0x00 0x04>`,
}

// GenerateDTS builds a synthetic document in canonical layout.
func GenerateDTS(profile Profile) []byte {
	if profile.Depth == 0 {
		profile.Depth = 3
	}
	if profile.ChildrenPerNode == 0 {
		profile.ChildrenPerNode = 4
	}
	if profile.PropertiesPerNode == 0 {
		profile.PropertiesPerNode = 6
	}
	seed := profile.Seed
	if seed == 0 {
		seed = 0x5eed
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1))

	var buf bytes.Buffer
	buf.WriteString(VersionHeader + Newline + Newline)
	generateNode(&buf, rng, profile, "/", 0)
	return buf.Bytes()
}

func generateNode(buf *bytes.Buffer, rng *rand.Rand, profile Profile, name string, depth int) {
	indent := strings.Repeat(Indent, depth)
	fmt.Fprintf(buf, "%s%s {\n", indent, name)

	props := 1 + rng.IntN(profile.PropertiesPerNode)
	for i := range props {
		if profile.Comments && rng.IntN(4) == 0 {
			fmt.Fprintf(buf, "%s\t// generated comment %d\n", indent, i)
		}
		key := fmt.Sprintf("prop-%d", i)
		if rng.Float64() < profile.FlagPct {
			fmt.Fprintf(buf, "%s\t%s;\n", indent, key)
			continue
		}
		fmt.Fprintf(buf, "%s\t%s = %s;\n", indent, key, sampleValues[rng.IntN(len(sampleValues))])
	}

	if depth < profile.Depth {
		buf.WriteString(Newline)
		for i := range profile.ChildrenPerNode {
			child := fmt.Sprintf("node%d@%x", depth+1, i*0x1000)
			generateNode(buf, rng, profile, child, depth+1)
			if i < profile.ChildrenPerNode-1 {
				buf.WriteString(Newline)
			}
		}
	}

	fmt.Fprintf(buf, "%s};\n", indent)
}
