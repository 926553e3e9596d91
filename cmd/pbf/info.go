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
	"encoding/json"
	"fmt"
	"log"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cridenour/osmpbf/cmd/pbf/cli"

	pbf "github.com/cridenour/osmpbf"
)

var (
	jsonfmt bool
	infoIn  *os.File
)

func init() {
	RootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVarP(&jsonfmt, "json", "j", false, "format information in JSON")
	infoCmd.Flags().VarP(cli.NewReaderValue(os.Stdin, &infoIn, "file"), "in", "i", "input OSM PBF file (default stdin)")
}

// infoSummary is the shape printed by info, either as plain text or JSON.
type infoSummary struct {
	BoundingBox string `json:"boundingBox"`
	NodeCount   int    `json:"nodeCount"`
	WayCount    int    `json:"wayCount"`
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print information about an OSM PBF file",
	Long:  "Print information about an OSM PBF file: its bounding box and node and way counts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if infoIn != os.Stdin {
			defer infoIn.Close()
		}

		r, err := cli.WrapInputFile(infoIn)
		if err != nil {
			log.Fatal(err)
		}
		defer r.Close()

		m, err := pbf.Decode(r)
		if err != nil {
			log.Fatal(err)
		}

		info := infoSummary{
			BoundingBox: m.BBox().String(),
			NodeCount:   m.NumNodes(),
			WayCount:    m.NumWays(),
		}

		if jsonfmt {
			b, err := json.Marshal(info)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(string(b))

			return
		}

		fmt.Printf("BoundingBox: %s\n", info.BoundingBox)
		fmt.Printf("NodeCount: %s\n", humanize.Comma(int64(info.NodeCount)))
		fmt.Printf("WayCount: %s\n", humanize.Comma(int64(info.WayCount)))
	},
}
