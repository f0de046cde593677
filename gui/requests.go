// This file is part of the C64 chip ensemble.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package gui

// FeatureReq is used to request the setting of a gui attribute
// eg. toggling the overlay.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// EmulationState indicates to the GUI that the emulation is in a particular
// state.
//
// Note that these should be set for all application types. The GUI state will
// start in StateInitialising and a play-mode front end, for example, should
// set StateRunning as soon as the emulation begins running cycles.
type EmulationState int

// List of valid emulation states.
const (
	StateInitialising EmulationState = iota
	StatePaused
	StateRunning
	StateStepping
	StateRewinding
	StateEnding
)

// List of valid feature requests. argument must be of the type specified or
// else the interface{} type conversion will fail and the application will
// probably crash.
//
// Note that, like the name suggests, these are requests, they may or may not
// be satisfied depending other conditions in the GUI.
const (
	// ReqSetPlaymode is called whenever the play-mode loop is entered.
	ReqSetPlaymode FeatureReq = "ReqSetPlaymode"

	// ReqSetDebugmode is called whenever an interactive monitor session is
	// entered.
	ReqSetDebugmode FeatureReq = "ReqSetDebugmode"

	// notify GUI of emulation state. the GUI should use this to alter how
	// information, particularly the display, is presented.
	ReqState FeatureReq = "ReqState" // EmulationState

	// whether gui should try to sync with the monitor refresh rate. not all
	// gui modes have to obey this but for presentation/play modes it's a good
	// idea to have it set.
	ReqMonitorSync FeatureReq = "ReqMonitorSync" // bool

	// whether the gui is visible or not. results in an error if requested in
	// playmode.
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// put gui output into full-screen mode (ie. no window border and content
	// the size of the monitor).
	ReqFullScreen FeatureReq = "ReqFullScreen" // bool

	// a disk image has been inserted into, or removed from, the drive. the
	// string is the disk image's label, or empty for removal.
	ReqDiskChange FeatureReq = "ReqDiskChange" // string

	// a cartridge has been inserted into, or removed from, the expansion
	// port. the string is the cartridge variant's description.
	ReqCartridgeChange FeatureReq = "ReqCartridgeChange" // string
)
