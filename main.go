package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/app"
	"github.com/llehouerou/reel/internal/config"
	"github.com/llehouerou/reel/internal/debug"
	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/icons"
	"github.com/llehouerou/reel/internal/state"
)

const usage = "usage: reel [folder]"

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	var folder string
	if len(os.Args) == 2 {
		if os.Args[1] == "-h" || os.Args[1] == "--help" {
			fmt.Println(usage)
			return
		}
		folder = os.Args[1]
	}

	os.Exit(run(folder))
}

func run(folder string) int {
	closeLog, err := debug.Setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log disabled: %v\n", err)
	}
	defer closeLog()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		return 1
	}

	icons.Init(cfg.Icons)

	stateMgr, err := state.Open()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		return 1
	}
	defer func() {
		if err := stateMgr.Close(); err != nil {
			fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpFocusSave, err))
		}
	}()

	m, err := app.New(cfg, stateMgr, folder)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpFolderLoad, err))
		return 1
	}
	defer m.Shutdown()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return 1
	}
	return 0
}
