// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/famicore/cartridgeloader"
	"github.com/jetsetilly/famicore/digest"
	"github.com/jetsetilly/famicore/disassembly"
	"github.com/jetsetilly/famicore/easyterm"
	"github.com/jetsetilly/famicore/hardware"
	"github.com/jetsetilly/famicore/hardware/ppu"
	"github.com/jetsetilly/famicore/logger"
	"github.com/jetsetilly/famicore/modalflag"
	"github.com/jetsetilly/famicore/performance"
	"github.com/jetsetilly/famicore/statsview"
	"github.com/jetsetilly/famicore/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "STEP", "DISASM", "VERSION")
	echo := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available()))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *echo {
		logger.SetEcho(md.Output)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "STEP":
		err = step(md)

	case "DISASM":
		err = disasm(md)

	case "VERSION":
		v, r, _ := version.Version()
		fmt.Fprintf(md.Output, "%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// loadCartridge loads and parses the cartridge named by the single remaining
// argument.
func loadCartridge(md *modalflag.Modes) (cartridgeloader.Cartridge, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return cartridgeloader.Cartridge{}, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return cartridgeloader.Cartridge{}, fmt.Errorf("too many arguments for %s mode", md)
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0))
	if err := cartload.Load(); err != nil {
		return cartridgeloader.Cartridge{}, err
	}

	return cartload.Cartridge()
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	frames := md.AddInt("frames", 60, "number of frames to run")
	screenshot := md.AddString("png", "", "save the final frame to a PNG file")
	scale := md.AddInt("scale", 1, "scaling of the PNG file")
	dot := md.AddString("memviz", "", "save a graph of the console state to a dot file")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cart, err := loadCartridge(md)
	if err != nil {
		return err
	}

	scr := ppu.NewScreen()
	dig := digest.NewVideo(scr)

	con := hardware.NewConsole()
	con.AttachCartridge(cart, dig)

	start := time.Now()
	err = performance.RunProfiler(*profile, cartridgeloader.NewLoader(md.GetArg(0)).ShortName(), func() error {
		return con.RunForFrameCount(*frames, nil)
	})
	if err != nil {
		logger.Tail(md.Output, 10)
		return err
	}

	duration := time.Since(start)
	fps, accuracy := performance.CalcFPS(dig.Frame(), duration)
	fmt.Fprintf(md.Output, "%d frames in %s (%.2f fps, %.1f%%)\n", dig.Frame(), duration.Round(time.Millisecond), fps, accuracy)
	fmt.Fprintf(md.Output, "%s\n", dig.Hash())

	if *screenshot != "" {
		f, err := os.Create(*screenshot)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := png.Encode(f, scr.Scaled(*scale)); err != nil {
			return err
		}
	}

	if *dot != "" {
		f, err := os.Create(*dot)
		if err != nil {
			return err
		}
		defer f.Close()

		memviz.Map(f, con.CPU, con.PPU)
	}

	return nil
}

func step(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("keys: space/return steps one instruction, f runs to the end of the frame, r resets, q quits")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cart, err := loadCartridge(md)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromCartridge(cart)
	if err != nil {
		return err
	}

	con := hardware.NewConsole()
	con.AttachCartridge(cart, nil)

	var term easyterm.Terminal
	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	defer term.CleanUp()

	term.CBreakMode()

	for {
		term.Print("%s\n", con.CPU)
		if e, ok := dsm.Get(con.CPU.PC.Address()); ok {
			term.Print("next: %s\n", e)
		}

		k, err := term.ReadKey()
		if err != nil {
			return err
		}

		switch k {
		case 'q', easyterm.KeyCtrlC, easyterm.KeyCtrlD:
			return nil

		case easyterm.KeyCtrlZ:
			term.CanonicalMode()
			if err := easyterm.SuspendProcess(); err != nil {
				return err
			}
			term.CBreakMode()

		case 'r':
			con.Reset()
			term.Print("reset\n")

		case 'f':
			if err := con.RunForFrameCount(1, nil); err != nil {
				term.Print("* %v\n", err)
				continue // for loop
			}
			term.Print("frame %d\n", con.PPU.FrameNum)

		case easyterm.KeySpace, easyterm.KeyLineFeed, easyterm.KeyCarriageReturn:
			if _, err := con.Step(); err != nil {
				term.Print("* %v\n", err)
				continue // for loop
			}
			term.Print("%s\n", con.CPU.LastResult)
		}
	}
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	decoded := md.AddBool("decoded", false, "include instructions not reached by the program flow")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cart, err := loadCartridge(md)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromCartridge(cart)
	if err != nil {
		return err
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{
		ByteCode: *bytecode,
		Decoded:  *decoded,
	})
}
