package navcontext

import (
	"context"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/hts/sam"
	"github.com/klauspost/compress/gzip"

	"github.com/gvizlab/genomeview/feature"
	"github.com/gvizlab/genomeview/genome"
)

// Load builds a context named name from a region-descriptor file.  The file
// is TSV with a header row and columns name, chrom, start, end, one region
// per row in context order.  A row with an empty chrom column describes a
// gap of end-start bases.  Files ending in .gz are decompressed.
func Load(ctx context.Context, name, path string) (c *Context, err error) {
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return nil, errors.E(err, "open region file:", path)
	}
	defer file.CloseAndReport(ctx, in, &err)
	reader := io.Reader(in.Reader(ctx))
	if fileio.DetermineType(path) == fileio.Gzip {
		if reader, err = gzip.NewReader(reader); err != nil {
			return nil, errors.E(err, "decompress region file:", path)
		}
	}
	features, err := readRegions(reader, path)
	if err != nil {
		return nil, err
	}
	log.Printf("%s: loaded %d region(s) from %s", name, len(features), path)
	return New(name, features)
}

func readRegions(reader io.Reader, path string) ([]*feature.Feature, error) {
	r := tsv.NewReader(reader)
	r.HasHeaderRow = true

	row := struct {
		Name  string
		Chrom string
		Start int
		End   int
	}{}
	var features []*feature.Feature
	nRow := 0
	for {
		if err := r.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.E(err, "read region file:", path)
		}
		nRow++
		if row.Name == "" {
			return nil, errors.E("region file", path, "row", nRow, "has an empty name")
		}
		if row.Start < 0 || row.End < row.Start {
			return nil, errors.E("region file", path, "row", nRow, "has an invalid range")
		}
		if row.Chrom == feature.GapChr {
			features = append(features, feature.NewGap(row.Name, row.End-row.Start))
		} else {
			features = append(features, feature.New(row.Name, genome.New(row.Chrom, row.Start, row.End)))
		}
	}
	return features, nil
}

// FromSAMHeader builds a whole-genome context from the reference sequences
// of a BAM/SAM header: one feature per reference, in header order, each
// spanning its full chromosome.
func FromSAMHeader(name string, header *sam.Header) (*Context, error) {
	refs := header.Refs()
	features := make([]*feature.Feature, 0, len(refs))
	for _, ref := range refs {
		features = append(features, feature.New(ref.Name(), genome.New(ref.Name(), 0, ref.Len())))
	}
	return New(name, features)
}
