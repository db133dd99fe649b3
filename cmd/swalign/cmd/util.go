// Copyright © 2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/go-logging"
	"github.com/shenwei356/util/pathutil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shenwei356/swalign/internal/config"
)

var log *logging.Logger

func init() {
	logFormat := logging.MustStringFormatter(`%{time:15:04:05.000} [%{level:.4s}] %{message}`)
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	backendFormatter := logging.NewBackendFormatter(backend, logFormat)
	logging.SetBackend(backendFormatter)
	log = logging.MustGetLogger("swalign")
}

// Options contains the global options.
type Options struct {
	Verbose bool
	Timeout time.Duration
	Config  *config.Config
}

func getOptions(cmd *cobra.Command) *Options {
	cfg, err := config.Load(viper.GetViper(), getFlagString(cmd, "config"))
	checkError(err)

	timeout := getFlagDuration(cmd, "timeout")
	if timeout < 0 {
		checkError(fmt.Errorf("the value of flag --timeout (%s) should be >= 0", timeout))
	}

	return &Options{
		Verbose: getFlagBool(cmd, "verbose"),
		Timeout: timeout,
		Config:  cfg,
	}
}

// alignContext returns a context with the timeout of the options, if any.
func (opt *Options) alignContext() (context.Context, context.CancelFunc) {
	if opt.Timeout > 0 {
		return context.WithTimeout(context.Background(), opt.Timeout)
	}
	return context.WithCancel(context.Background())
}

func checkError(err error) {
	if err != nil {
		if profiler != nil {
			profiler.Stop()
		}
		log.Error(err)
		os.Exit(1)
	}
}

func getFlagString(cmd *cobra.Command, flag string) string {
	value, err := cmd.Flags().GetString(flag)
	checkError(err)
	return value
}

func getFlagBool(cmd *cobra.Command, flag string) bool {
	value, err := cmd.Flags().GetBool(flag)
	checkError(err)
	return value
}

func getFlagDuration(cmd *cobra.Command, flag string) time.Duration {
	value, err := cmd.Flags().GetDuration(flag)
	checkError(err)
	return value
}

// outStream opens the output file, "-" for stdout.
func outStream(file string) (*bufio.Writer, io.Closer, error) {
	if file == "-" {
		return bufio.NewWriter(os.Stdout), io.NopCloser(nil), nil
	}
	fh, err := os.Create(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to write file: %s: %s", file, err)
	}
	return bufio.NewWriter(fh), fh, nil
}

// readFirstRecord returns the ID and sequence of the first FASTA/FASTQ record of a file, "-" for stdin.
func readFirstRecord(file string) ([]byte, []byte, error) {
	if file != "-" {
		ok, err := pathutil.Exists(file)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to check file: %s: %s", file, err)
		}
		if !ok {
			return nil, nil, fmt.Errorf("file not found: %s", file)
		}
	}

	fastxReader, err := fastx.NewReader(nil, file, "")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file: %s: %s", file, err)
	}
	defer fastxReader.Close()

	record, err := fastxReader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil, fmt.Errorf("no sequences in file: %s", file)
		}
		return nil, nil, fmt.Errorf("failed to read file: %s: %s", file, err)
	}

	id := append([]byte(nil), record.ID...)
	seq := append([]byte(nil), record.Seq.Seq...)
	return id, seq, nil
}
