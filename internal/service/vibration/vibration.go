// Package vibration drives the rumble motors of a controller.
package vibration

import (
	"fmt"
	"sync"

	"xpad/internal/service/normalize"
	"xpad/internal/xinput"
)

// Vibrator interface defines methods to control the rumble motors.
type Vibrator interface {
	Set(cmd Command) error
	Stop() error
	Last() Command
}

// Command is the requested intensity of both motors, as fractions of full
// speed. Left is the low-frequency motor, Right the high-frequency one.
type Command struct {
	Left  float64
	Right float64
}

// Controller issues vibration writes for one controller slot.
type Controller struct {
	slot int

	mu   sync.Mutex
	last Command
}

// New returns a Controller for the given slot.
func New(slot int) *Controller {
	return &Controller{slot: slot}
}

// Set clamps cmd to the unit range, scales it to the raw motor range and
// writes it to the device immediately. There is no batching or debouncing;
// every call is one write. The command is remembered only when the device
// accepts it.
func (c *Controller) Set(cmd Command) error {
	cmd.Left = normalize.Clamp01(cmd.Left)
	cmd.Right = normalize.Clamp01(cmd.Right)

	vib := xinput.Vibration{
		LeftMotor:  Scale(cmd.Left),
		RightMotor: Scale(cmd.Right),
	}
	if err := xinput.Query.SetVibration(c.slot, vib); err != nil {
		return fmt.Errorf("vibration: slot %d: %w", c.slot, err)
	}

	c.mu.Lock()
	c.last = cmd
	c.mu.Unlock()
	return nil
}

// Stop turns both motors off.
func (c *Controller) Stop() error {
	return c.Set(Command{})
}

// Last returns the most recent command accepted by the device.
func (c *Controller) Last() Command {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Scale converts a unit-range intensity to the raw 16-bit motor speed.
func Scale(v float64) uint16 {
	return uint16(v * 65535)
}
