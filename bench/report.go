// Copyright 2025 Ghaith Chrit
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

package bench

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// PrintConfig toggles the optional column groups of the results table.
type PrintConfig struct {
	AvgPerOp   bool `yaml:"print_avg_per_op"`
	Throughput bool `yaml:"print_throughput"`
	Rotations  bool `yaml:"print_rotations"`
	Heights    bool `yaml:"print_heights"`
	Validation bool `yaml:"print_validation"`
	Balance    bool `yaml:"print_balance"`
}

// DefaultPrintConfig enables every column group.
func DefaultPrintConfig() PrintConfig {
	return PrintConfig{
		AvgPerOp:   true,
		Throughput: true,
		Rotations:  true,
		Heights:    true,
		Validation: true,
		Balance:    true,
	}
}

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Align(lipgloss.Right).Padding(0, 1)
	tableNameStyle   = lipgloss.NewStyle().Align(lipgloss.Left).Padding(0, 1)
	titleStyle       = lipgloss.NewStyle().Bold(true)
)

// RenderResults formats aggregated benchmark results as a table, one row
// per engine in StructureNames order, with columns selected by cfg.
// datasetSize and querySize are used for the per-item averages.
func RenderResults(results map[string]Summary, title string, datasetSize, querySize int, cfg PrintConfig) string {
	if len(results) == 0 {
		return "No benchmark results to display.\n"
	}

	headers := []string{"Structure", "Insert (s)", "Lookup (s)", "Delete (s)"}
	if cfg.AvgPerOp {
		headers = append(headers, "Insert/item", "Lookup/item", "Delete/item")
	}
	if cfg.Throughput {
		headers = append(headers, "Insert (ops/s)", "Lookup (ops/s)", "Delete (ops/s)")
	}
	if cfg.Rotations {
		headers = append(headers, "Rot-ins", "Rot-del")
	}
	if cfg.Heights {
		headers = append(headers, "H-ins", "H-del")
	}
	if cfg.Balance {
		headers = append(headers, "AvgDepth(ins)", "AvgDepth(del)", "Imb(ins)", "Imb(del)")
	}
	if cfg.Validation {
		headers = append(headers, "Valid(ins)", "Valid(del)")
	}

	var rows [][]string
	for _, name := range StructureNames {
		summary, ok := results[name]
		if !ok {
			continue
		}
		row := []string{
			name,
			fmtSec(summary.InsertSecMedian),
			fmtSec(summary.LookupSecMedian),
			fmtSec(summary.DeleteSecMedian),
		}
		if cfg.AvgPerOp {
			row = append(row,
				fmtPerItem(summary.InsertSecMedian, datasetSize),
				fmtPerItem(summary.LookupSecMedian, querySize),
				fmtPerItem(summary.DeleteSecMedian, querySize),
			)
		}
		if cfg.Throughput {
			row = append(row,
				fmtOps(summary.InsertOpsPerSec),
				fmtOps(summary.LookupOpsPerSec),
				fmtOps(summary.DeleteOpsPerSec),
			)
		}
		if cfg.Rotations {
			row = append(row,
				fmt.Sprintf("%d", summary.RotationsInsertMedian),
				fmt.Sprintf("%d", summary.RotationsDeleteMedian),
			)
		}
		if cfg.Heights {
			row = append(row,
				fmt.Sprintf("%d", summary.HeightAfterInsertMedian),
				fmt.Sprintf("%d", summary.HeightAfterDeleteMedian),
			)
		}
		if cfg.Balance {
			row = append(row,
				fmt.Sprintf("%.4f", summary.AvgDepthAfterInsertMedian),
				fmt.Sprintf("%.4f", summary.AvgDepthAfterDeleteMedian),
				fmt.Sprintf("%.0f", summary.MaxImbalanceAfterInsertMedian),
				fmt.Sprintf("%.0f", summary.MaxImbalanceAfterDeleteMedian),
			)
		}
		if cfg.Validation {
			row = append(row, fmtValid(summary.ValidateAfterInsertAllTrials), fmtValid(summary.ValidateAfterDeleteAllTrials))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			if col == 0 {
				return tableNameStyle
			}
			return tableCellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	rendered := t.Render()
	if title == "" {
		return rendered + "\n"
	}

	width := lipgloss.Width(rendered)
	pad := (width - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + titleStyle.Render(title) + "\n" + rendered + "\n"
}

func fmtSec(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

func fmtPerItem(sec float64, count int) string {
	if count <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.4e", sec/float64(count))
}

func fmtOps(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.0f", v)
}

func fmtValid(ok bool) string {
	if ok {
		return "OK"
	}
	return "FAIL"
}
