package main

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IbrahimElshafey/WhatsAppParser/internal/chat"
	"github.com/IbrahimElshafey/WhatsAppParser/internal/config"
)

// how many leading lines doctor probes for a recognizable header
const doctorProbeLines = 50

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [chat.txt]",
		Short: "Self-check: verify input, header format, media dir, and show effective config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if len(args) == 1 {
				cfg.Input = args[0]
			}

			fmt.Println("=== Config ===")
			fmt.Printf("  Input:       %s\n", orUnset(cfg.Input))
			fmt.Printf("  Media dir:   %s\n", orUnset(cfg.MediaDir))
			fmt.Printf("  Output:      %s\n", orUnset(cfg.Output))
			fmt.Printf("  Culture:     %s\n", cfg.Culture)
			fmt.Printf("  UTC offset:  %+dh\n", cfg.UTCOffsetHours)
			fmt.Printf("  Skip system: %v  Force RTL: %v  Single sheet: %v\n",
				cfg.SkipSystem, cfg.ForceRTL, cfg.SingleSheet)

			fmt.Println("\n=== Input ===")
			if cfg.Input == "" {
				fmt.Println("  no input configured")
				return nil
			}
			checkInput(cfg.Input, cfg.Culture)

			if cfg.MediaDir != "" {
				fmt.Println("\n=== Media ===")
				checkMediaDir(cfg.MediaDir)
			}
			return nil
		},
	}
}

func checkInput(path, culture string) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("  %s (NOT READABLE: %v)\n", path, err)
		return
	}
	defer f.Close()
	fmt.Printf("  %s (OK)\n", path)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	headers := 0
	for i := 0; i < doctorProbeLines && scanner.Scan(); i++ {
		line := scanner.Text()
		if i == 0 {
			if strings.HasPrefix(line, "\ufeff") {
				fmt.Println("  BOM: present (handled)")
				line = strings.TrimPrefix(line, "\ufeff")
			}
		}
		if h, ok := chat.MatchHeader(chat.Normalize(strings.TrimRight(line, "\r"))); ok {
			if _, ok := chat.ResolveTimestamp(h.Date, h.Time, h.Meridiem, culture); ok {
				headers++
			}
		}
	}
	if headers == 0 {
		fmt.Printf("  Headers: NONE in first %d lines (unsupported export format?)\n", doctorProbeLines)
	} else {
		fmt.Printf("  Headers: %d recognized in first %d lines (OK)\n", headers, doctorProbeLines)
	}
}

func checkMediaDir(dir string) {
	info, err := os.Stat(dir)
	if err != nil {
		fmt.Printf("  %s (NOT FOUND)\n", dir)
		return
	}
	if !info.IsDir() {
		fmt.Printf("  %s (NOT A DIRECTORY)\n", dir)
		return
	}
	count := 0
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			count++
		}
		return nil
	})
	fmt.Printf("  %s (OK, %d files)\n", dir, count)
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
