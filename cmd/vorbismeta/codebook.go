package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/thesyncim/govorbis"
	"github.com/thesyncim/govorbis/codebook"
)

// bookFile is the YAML description read by "codebook pack" and written by
// "codebook show".
type bookFile struct {
	Codebooks []bookDesc `json:"codebooks"`
}

type bookDesc struct {
	Dim int `json:"dim"`

	// Entries defaults to len(Lengths) when zero.
	Entries int   `json:"entries,omitempty"`
	Lengths []int `json:"lengths"`

	// MapType is none, lattice or explicit; empty means none.
	MapType   string  `json:"map_type,omitempty"`
	Min       float64 `json:"min,omitempty"`
	Delta     float64 `json:"delta,omitempty"`
	ValueBits int     `json:"value_bits,omitempty"`
	Sequence  bool    `json:"sequence,omitempty"`
	Values    []int32 `json:"values,omitempty"`

	// Set by "codebook show" only.
	LengthEncoding string    `json:"length_encoding,omitempty"`
	Vectors        []float32 `json:"vectors,omitempty"`
}

func parseMapType(s string) (codebook.MapType, error) {
	switch s {
	case "", "none":
		return codebook.MapNone, nil
	case "lattice":
		return codebook.MapLattice, nil
	case "explicit":
		return codebook.MapExplicit, nil
	}
	return 0, fmt.Errorf("unknown map_type %q", s)
}

func (d bookDesc) static() (*codebook.Static, error) {
	mt, err := parseMapType(d.MapType)
	if err != nil {
		return nil, err
	}
	entries := d.Entries
	if entries == 0 {
		entries = len(d.Lengths)
	}
	s := &codebook.Static{
		Dim:        d.Dim,
		Entries:    entries,
		LengthList: d.Lengths,
		MapType:    mt,
	}
	if mt != codebook.MapNone {
		s.QMin = codebook.Float32Pack(d.Min)
		s.QDelta = codebook.Float32Pack(d.Delta)
		s.QQuant = d.ValueBits
		s.QSequenceP = d.Sequence
		s.QuantList = d.Values
	}
	return s, nil
}

func describe(s *codebook.Static, vectors bool) bookDesc {
	d := bookDesc{
		Dim:            s.Dim,
		Entries:        s.Entries,
		Lengths:        s.LengthList,
		MapType:        s.MapType.String(),
		LengthEncoding: codebook.ChooseLengthEncoding(s.LengthList).String(),
	}
	if s.MapType != codebook.MapNone {
		d.Min = codebook.Float32Unpack(s.QMin)
		d.Delta = codebook.Float32Unpack(s.QDelta)
		d.ValueBits = s.QQuant
		d.Sequence = s.QSequenceP
		d.Values = s.QuantList
		if vectors {
			d.Vectors = s.Unquantize()
		}
	}
	return d
}

func newCodebookCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codebook",
		Short: "Codebook packet commands",
	}

	packCmd := &cobra.Command{
		Use:   "pack DESC.yaml",
		Short: "Pack codebooks described in YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var f bookFile
			if err := yaml.UnmarshalStrict(data, &f); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			books := make([]*codebook.Static, len(f.Codebooks))
			for i, d := range f.Codebooks {
				s, err := d.static()
				if err != nil {
					return fmt.Errorf("codebook %d: %w", i, err)
				}
				books[i] = s
				a.log.WithField("book", i).
					WithField("entries", s.Entries).
					WithField("lengths", codebook.ChooseLengthEncoding(s.LengthList).String()).
					Debug("packing codebook")
			}

			p, err := govorbis.CodebookPacket(books...)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, p.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			a.log.WithField("file", out).
				WithField("books", len(books)).
				WithField("bytes", len(p.Data)).
				Info("wrote codebook packet")
			return nil
		},
	}
	packCmd.Flags().String("out", "", "output file")
	_ = packCmd.MarkFlagRequired("out")

	showCmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a codebook packet as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vectors, _ := cmd.Flags().GetBool("values")

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			books, err := govorbis.ParseCodebookPacket(&govorbis.Packet{Data: data})
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			var f bookFile
			for _, s := range books {
				f.Codebooks = append(f.Codebooks, describe(s, vectors))
			}
			y, err := yaml.Marshal(f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(y)
			return err
		},
	}
	showCmd.Flags().Bool("values", false, "include unquantized vectors")

	cmd.AddCommand(packCmd, showCmd)
	return cmd
}
