// This file is part of a8input.
//
// a8input is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// a8input is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with a8input.  If not, see <https://www.gnu.org/licenses/>.

package keyboard

// Action is a request to the host made with a chord.
type Action int

// List of valid Action values.
const (
	ActionNone Action = iota
	ActionToggleFullscreen
	ActionToggle80Column
	ActionToggleHorizontalArea
	ActionSwapPorts
	ActionToggleMouseGrab
	ActionNextNTSCPreset

	// adjustments are accompanied by the direction of the adjustment in
	// Result.Adjust
	ActionHue
	ActionSaturation
	ActionContrast
	ActionBrightness
	ActionGamma
	ActionColourDelay
	ActionScanlines
	ActionNTSCSharpness
	ActionNTSCResolution
	ActionNTSCArtifacts
	ActionNTSCFringing
	ActionNTSCBleed
	ActionNTSCBurstPhase
)

var actionNames = []string{
	"none",
	"toggle fullscreen",
	"toggle 80 column",
	"toggle horizontal area",
	"swap ports",
	"toggle mouse grab",
	"next NTSC preset",
	"hue",
	"saturation",
	"contrast",
	"brightness",
	"gamma",
	"colour delay",
	"scanlines",
	"NTSC sharpness",
	"NTSC resolution",
	"NTSC artifacts",
	"NTSC fringing",
	"NTSC bleed",
	"NTSC burst phase",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// IsAdjustment returns true if the action adjusts a value.
func (a Action) IsAdjustment() bool {
	return a >= ActionHue
}

// Menu is a menu in the emulator's user interface. A Result with the UI key
// code may name the menu that should be opened.
type Menu int

// List of valid Menu values.
const (
	MenuNone Menu = iota
	MenuRun
	MenuSystem
	MenuSound
	MenuSoundRecording
	MenuVideoRecording
	MenuAbout
	MenuSaveState
	MenuDisk
	MenuLoadState
	MenuCartridge
	MenuCassette
	MenuMonitor
)

var menuNames = []string{
	"none",
	"run",
	"system",
	"sound",
	"sound recording",
	"video recording",
	"about",
	"save state",
	"disk",
	"load state",
	"cartridge",
	"cassette",
	"monitor",
}

func (m Menu) String() string {
	if m < 0 || int(m) >= len(menuNames) {
		return "unknown"
	}
	return menuNames[m]
}
