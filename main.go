// Command xpad-mgr monitors XInput game controllers and prints their activity.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	"xpad/internal/config"
	"xpad/internal/service"
	"xpad/internal/service/battery"
	"xpad/internal/service/discovery"
	"xpad/internal/service/events"
	"xpad/internal/service/sampler"
	"xpad/internal/service/vibration"
	"xpad/internal/xinput"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {

	var rootCmd = &cobra.Command{
		Use:   "xpad-mgr",
		Short: "xpad-mgr monitors XInput game controllers from the command line.",
		Long:  "xpad-mgr polls the XInput user slots and reports controller activity: state transitions, button presses and releases, connects and disconnects. Deadzones, poll rates and the device backend come from a YAML configuration file that is reloaded while the program runs.",
	}

	confPtr := rootCmd.PersistentFlags().StringP("config", "f", "", "Path to the configuration file")
	debugPtr := rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	versionPtr := rootCmd.PersistentFlags().BoolP("version", "v", false, "Show version information")

	rootCmd.Run = func(_ *cobra.Command, _ []string) {

		if *versionPtr {
			fmt.Printf("xpad-mgr version %s\n", Version)
			return
		}

		conf, path := loadConfig(*confPtr)
		applyDebug(*debugPtr)

		if err := selectBackend(conf.Backend); err != nil {
			log.Fatalf("Error selecting backend: %s\n", err)
		}

		monitor(conf, path)
	}

	var devicesCmd = &cobra.Command{
		Use:   "devices",
		Short: "List the connected controllers",
		Run: func(_ *cobra.Command, _ []string) {
			conf, _ := loadConfig(*confPtr)
			applyDebug(*debugPtr)

			if err := selectBackend(conf.Backend); err != nil {
				log.Fatalf("Error selecting backend: %s\n", err)
			}

			slots := discovery.Connected(conf.MaxControllers)
			if len(slots) == 0 {
				fmt.Println("No controllers connected")
				return
			}

			for _, slot := range slots {
				info, err := discovery.Describe(slot)
				if err != nil {
					fmt.Printf("Slot %d: %s\n", slot, err)
					continue
				}
				line := fmt.Sprintf("Slot %d: %s", slot, describeInfo(info))

				bat, err := battery.Status(slot)
				if err == nil {
					switch bat.Type {
					case battery.TypeWired:
						line += " (wired)"
					case battery.TypeAlkaline, battery.TypeNimh:
						line += fmt.Sprintf(" (battery %.0f%%)", bat.Charge*100)
					}
				}
				fmt.Println(line)
			}
		},
	}

	var vibrateCmd = &cobra.Command{
		Use:   "vibrate <slot> <left> <right>",
		Short: "Pulse the rumble motors of one controller",
		Long:  "Pulse the rumble motors of the controller in the given slot. Left and right are motor speeds between 0 and 1; the left motor is the low-frequency one.",
		Args:  cobra.ExactArgs(3),
	}

	durationPtr := vibrateCmd.Flags().DurationP("duration", "t", time.Second, "How long to run the motors")

	vibrateCmd.Run = func(_ *cobra.Command, args []string) {
		conf, _ := loadConfig(*confPtr)
		applyDebug(*debugPtr)

		if err := selectBackend(conf.Backend); err != nil {
			log.Fatalf("Error selecting backend: %s\n", err)
		}

		slot, err := strconv.Atoi(args[0])
		if err != nil || slot < 0 || slot >= xinput.MaxControllers {
			log.Fatalf("Slot must be a number between 0 and %d\n", xinput.MaxControllers-1)
		}
		left, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			log.Fatalf("Invalid left motor speed %q\n", args[1])
		}
		right, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			log.Fatalf("Invalid right motor speed %q\n", args[2])
		}

		ctrl := vibration.New(slot)
		if err := ctrl.Set(vibration.Command{Left: left, Right: right}); err != nil {
			log.Fatalf("Error starting motors: %s\n", err)
		}
		time.Sleep(*durationPtr)
		if err := ctrl.Stop(); err != nil {
			log.Fatalf("Error stopping motors: %s\n", err)
		}
	}

	rootCmd.AddCommand(devicesCmd, vibrateCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %s\n", err)
	}
}

func loadConfig(path string) (*config.Config, string) {
	if path == "" {
		var err error
		path, err = config.Path()
		if err != nil {
			log.Fatalf("Error locating configuration: %s\n", err)
		}
	}

	conf, err := config.Load(path)
	if err != nil {
		log.Fatalf("Error loading configuration: %s\n", err)
	}
	return conf, path
}

func applyDebug(on bool) {
	service.Debug = on
	sampler.Debug = on
}

// selectBackend installs the device query implementation. With auto the
// native DLL wins and the joystick bridge is the fallback, which keeps
// the same binary useful on machines without XInput.
func selectBackend(backend string) error {
	switch backend {
	case "", "auto":
		dev, err := xinput.NewNative()
		if err != nil {
			if service.Debug {
				log.Default().Println("Native XInput unavailable, using joystick bridge:", err)
			}
			dev = xinput.NewBridge()
		}
		xinput.Query = dev
	case "xinput":
		dev, err := xinput.NewNative()
		if err != nil {
			return err
		}
		xinput.Query = dev
	case "joystick":
		xinput.Query = xinput.NewBridge()
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}
	return nil
}

// monitor runs the manager and prints events until interrupted.
func monitor(conf *config.Config, confPath string) {
	disp := events.NewDispatcher()
	states := disp.Subscribe(events.KindStateChanged)
	downs := disp.Subscribe(events.KindKeyDown)
	ups := disp.Subscribe(events.KindKeyUp)
	connects := disp.Subscribe(events.KindConnected)
	disconnects := disp.Subscribe(events.KindDisconnected)

	m := service.StartManager(conf, disp, confPath)
	defer m.Stop()

	log.Default().Println("Watching for controllers, press Ctrl+C to exit")

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)

	active := make(map[int]sampler.Control)

	for {
		select {
		case <-sigc:
			log.Default().Println("Shutting down")
			return

		case ev := <-connects.C:
			info, _ := ev.Data.(discovery.Info)
			log.Default().Printf("Controller connected on slot %d (%s)\n", ev.Slot, describeInfo(info))

		case ev := <-disconnects.C:
			delete(active, ev.Slot)
			log.Default().Printf("Controller disconnected from slot %d\n", ev.Slot)

		case ev := <-states.C:
			st, ok := ev.Data.(*sampler.State)
			if !ok {
				continue
			}
			control, live := st.ActiveControl()
			if !live {
				control = ""
			}
			if active[ev.Slot] == control {
				continue
			}
			active[ev.Slot] = control
			if live {
				log.Default().Printf("Slot %d: %s active\n", ev.Slot, control)
			} else {
				log.Default().Printf("Slot %d: idle\n", ev.Slot)
			}

		case ev := <-downs.C:
			if ks, ok := ev.Data.(xinput.Keystroke); ok {
				log.Default().Printf("Slot %d: %s pressed\n", ev.Slot, xinput.KeyName(ks.VirtualKey))
			}

		case ev := <-ups.C:
			if ks, ok := ev.Data.(xinput.Keystroke); ok {
				log.Default().Printf("Slot %d: %s released\n", ev.Slot, xinput.KeyName(ks.VirtualKey))
			}
		}
	}
}

func describeInfo(info discovery.Info) string {
	s := info.SubType
	if s == "" {
		s = "controller"
	}
	if info.Wireless {
		s += ", wireless"
	}
	if info.ForceFeedback {
		s += ", rumble"
	}
	if info.Voice {
		s += ", voice"
	}
	return s
}
