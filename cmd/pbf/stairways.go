// Copyright 2017-25 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/cridenour/osmpbf/cmd/pbf/cli"

	pbf "github.com/cridenour/osmpbf"
)

var (
	stairwaysOut string
	stairwaysIn  *os.File
)

func init() {
	RootCmd.AddCommand(stairwaysCmd)
	stairwaysCmd.Flags().StringVarP(&stairwaysOut, "out", "o", "ways_output.json", "output file for the stairway JSON")
	stairwaysCmd.Flags().VarP(cli.NewReaderValue(os.Stdin, &stairwaysIn, "file"), "in", "i", "input OSM PBF file (default stdin)")
}

var stairwaysCmd = &cobra.Command{
	Use:   "stairways",
	Short: "Extract highway=steps ways and write their node coordinates as JSON",
	Long:  "Extract every way tagged highway=steps, dereference its node refs, and write the result as JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if stairwaysIn != os.Stdin {
			defer stairwaysIn.Close()
		}

		r, err := cli.WrapInputFile(stairwaysIn)
		if err != nil {
			log.Fatal(err)
		}
		defer r.Close()

		m, err := pbf.Decode(r)
		if err != nil {
			log.Fatal(err)
		}

		out, err := m.Stairways()
		if err != nil {
			log.Fatal(err)
		}

		if err := os.WriteFile(stairwaysOut, out, 0o644); err != nil {
			log.Fatal(err)
		}
	},
}
