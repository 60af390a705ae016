package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thesyncim/govorbis"
	"github.com/thesyncim/govorbis/bitpack"
	"github.com/thesyncim/govorbis/comment"
)

func newCommentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Comment header commands",
	}

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Write a comment header packet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vendor, _ := cmd.Flags().GetString("vendor")
			tags, _ := cmd.Flags().GetStringArray("tag")
			raw, _ := cmd.Flags().GetBool("raw")
			out, _ := cmd.Flags().GetString("out")

			if !cmd.Flags().Changed("vendor") {
				vendor = a.cfg.Vendor
			}
			c := &comment.Comment{Vendor: vendor}
			for _, t := range append(append([]string(nil), a.cfg.Tags...), tags...) {
				tag, value, err := parseTag(t)
				if err != nil {
					return err
				}
				c.AddTag(tag, value)
			}

			data, err := encodeComments(c, raw)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			a.log.WithFields(logrus.Fields{
				"file":     out,
				"bytes":    len(data),
				"comments": len(c.Comments),
			}).Info("wrote comment header")
			return nil
		},
	}
	buildCmd.Flags().String("vendor", "", "vendor string (default from config)")
	buildCmd.Flags().StringArray("tag", nil, "comment as TAG=value (repeatable)")
	buildCmd.Flags().Bool("raw", false, "write a bare comment block without the header preamble")
	buildCmd.Flags().String("out", "", "output file")
	_ = buildCmd.MarkFlagRequired("out")

	showCmd := &cobra.Command{
		Use:   "show FILE...",
		Short: "Print comment header packets",
		Long: "Print comment header packets. Arguments may be doublestar glob\n" +
			"patterns such as 'music/**/*.bin'; with several files each block is\n" +
			"preceded by a '# FILE' line.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")
			query, _ := cmd.Flags().GetString("tag")

			files, err := expandFiles(args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, name := range files {
				data, err := os.ReadFile(name)
				if err != nil {
					return err
				}
				a.log.WithField("file", name).WithField("bytes", len(data)).Debug("read comment header")

				c, err := decodeComments(data, raw)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}

				if len(files) > 1 {
					fmt.Fprintf(w, "# %s\n", name)
				}
				if query == "" {
					fmt.Fprintln(w, c.String())
					continue
				}
				for i := 0; ; i++ {
					v, ok := c.Query(query, i)
					if !ok {
						break
					}
					fmt.Fprintln(w, v)
				}
			}
			return nil
		},
	}
	showCmd.Flags().Bool("raw", false, "input is a bare comment block")
	showCmd.Flags().String("tag", "", "print only the values of this tag")

	cmd.AddCommand(buildCmd, showCmd)
	return cmd
}

// parseTag splits "TAG=value". The tag must be non-empty and free of '='.
func parseTag(s string) (tag, value string, err error) {
	tag, value, ok := strings.Cut(s, "=")
	if !ok || tag == "" {
		return "", "", fmt.Errorf("invalid tag %q: want TAG=value", s)
	}
	return tag, value, nil
}

// expandFiles resolves glob patterns. Arguments without glob syntax are kept
// as given so a missing file reports its own error.
func expandFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			files = append(files, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("pattern %q matched no files", arg)
		}
		slices.Sort(matches)
		files = append(files, matches...)
	}
	return files, nil
}

func encodeComments(c *comment.Comment, raw bool) ([]byte, error) {
	if raw {
		b := bitpack.NewWriter()
		if err := c.Pack(b); err != nil {
			return nil, err
		}
		return b.Bytes(), nil
	}
	p, err := govorbis.CommentHeader(c)
	if err != nil {
		return nil, err
	}
	return p.Data, nil
}

func decodeComments(data []byte, raw bool) (*comment.Comment, error) {
	if raw {
		return comment.Unpack(bitpack.NewReader(data, 0, len(data)))
	}
	return govorbis.ParseCommentHeader(&govorbis.Packet{Data: data})
}
