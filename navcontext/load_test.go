package navcontext

import (
	"testing"

	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/hts/sam"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/require"

	"github.com/gvizlab/genomeview/genome"
	"github.com/gvizlab/genomeview/interval"
)

func TestLoad(t *testing.T) {
	ctx := vcontext.Background()
	c, err := Load(ctx, "hg-test", "testdata/regions.tsv")
	require.NoError(t, err)

	expect.EQ(t, c.Name(), "hg-test")
	expect.EQ(t, c.TotalBases(), 1000+300+500+800)

	features := c.Features()
	require.Equal(t, 4, len(features))
	expect.EQ(t, features[0].Name, "chr1p")
	expect.EQ(t, features[0].Locus, genome.New("chr1", 0, 1000))
	expect.True(t, features[1].IsGap)
	expect.EQ(t, features[1].Len(), 300)
	expect.EQ(t, features[2].Locus, genome.New("chr1", 2000, 2500))

	// The gap shifts chr1q's context position but not its genomic one.
	span, err := c.Parse("chr1:2000-2100")
	require.NoError(t, err)
	expect.EQ(t, span, interval.New(1300, 1400))

	_, err = Load(ctx, "missing", "testdata/no-such-file.tsv")
	expect.True(t, err != nil)
}

func TestFromSAMHeader(t *testing.T) {
	chr1, err := sam.NewReference("chr1", "", "", 1000, nil, nil)
	require.NoError(t, err)
	chr2, err := sam.NewReference("chr2", "", "", 500, nil, nil)
	require.NoError(t, err)
	header, err := sam.NewHeader(nil, []*sam.Reference{chr1, chr2})
	require.NoError(t, err)

	c, err := FromSAMHeader("from-bam", header)
	require.NoError(t, err)
	expect.EQ(t, c.TotalBases(), 1500)
	expect.EQ(t, c.GenomeIntervalToBases(genome.New("chr2", 100, 200)),
		[]interval.OpenInterval{{Start: 1100, End: 1200}})
}
