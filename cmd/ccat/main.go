// Package main implements ccat, a minimal cat clone that drives the progname
// and diag packages the way a typical command-line consumer would.
package main

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/clidiag/clidiag/diag"
	"github.com/clidiag/clidiag/internal/version"
	"github.com/clidiag/clidiag/progname"
)

// -u: write output without delay. The copy loop never buffers, so this is
// accepted only for POSIX cat compatibility.
var unbuffered bool

var rootCmd = &cobra.Command{
	Use:   "ccat [file ...]",
	Short: "Concatenate files to standard output",
	Long: `ccat concatenates the named files to standard output.
With no arguments, or where a file is -, it reads standard input.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			args = []string{"-"}
		}
		for _, path := range args {
			if err := catOne(path); err != nil {
				if path == "-" {
					diag.Err(1, "stdin: {}", err)
				} else {
					diag.Errp(1, path, "{}", err)
				}
			}
		}
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.String() + "\n")
	rootCmd.Flags().BoolVarP(&unbuffered, "unbuffered", "u", false,
		"write output without delay (always the case; accepted for compatibility)")
}

func main() {
	progname.Set(os.Args[0])

	if err := rootCmd.Execute(); err != nil {
		diag.Err(2, "{}", err)
	}
}

func catOne(path string) error {
	if path == "-" {
		return catStream(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		// The diagnostic line already names the path; strip the
		// PathError wrapper so it is not printed twice.
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return pathErr.Err
		}
		return err
	}
	defer f.Close()
	return catStream(f)
}

// catStream copies r to stdout in 64 KiB chunks.
func catStream(r io.Reader) error {
	buf := make([]byte, 64*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := os.Stdout.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
