// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package notifications

// Notice describes events that somehow change the presentation of the
// emulation. These notifications can be used to present additional
// information to the user without the notifying component needing to know
// anything about how (or whether) that presentation happens.
type Notice string

// List of defined notifications.
const (
	// the scheduler has started or stopped running cycles.
	NotifyRun  Notice = "NotifyRun"
	NotifyHalt Notice = "NotifyHalt"

	// warp mode (unthrottled execution) has been entered or left, either by
	// direct user request or automatically (eg. WarpOnLoad).
	NotifyWarpOn  Notice = "NotifyWarpOn"
	NotifyWarpOff Notice = "NotifyWarpOff"

	// warp mode has become the persistent default, or stopped being so.
	NotifyAlwaysWarpOn  Notice = "NotifyAlwaysWarpOn"
	NotifyAlwaysWarpOff Notice = "NotifyAlwaysWarpOff"

	// a ROM required by the current configuration (kernal, basic,
	// character, or a requested 1541 DOS ROM) could not be found.
	NotifyROMMissing Notice = "NotifyROMMissing"

	// the machine has completed its reset sequence and is ready to run.
	NotifyReadyToRun Notice = "NotifyReadyToRun"

	// a snapshot of the machine state has been taken.
	NotifySnapshotTaken Notice = "NotifySnapshotTaken"

	// a cartridge has been attached to, or removed from, the expansion port.
	NotifyCartridge   Notice = "NotifyCartridge"
	NotifyNoCartridge Notice = "NotifyNoCartridge"

	// disk and drive-related notifications.
	NotifyDisk       Notice = "NotifyDisk"
	NotifyNoDisk     Notice = "NotifyNoDisk"
	NotifyDiskSound  Notice = "NotifyDiskSound"
	NotifyNoDiskSound Notice = "NotifyNoDiskSound"

	NotifyMotorOn  Notice = "NotifyMotorOn"
	NotifyMotorOff Notice = "NotifyMotorOff"

	NotifyRedLEDOn  Notice = "NotifyRedLEDOn"
	NotifyRedLEDOff Notice = "NotifyRedLEDOff"

	NotifyHeadUp        Notice = "NotifyHeadUp"
	NotifyHeadDown      Notice = "NotifyHeadDown"
	NotifyHeadUpSound   Notice = "NotifyHeadUpSound"
	NotifyHeadDownSound Notice = "NotifyHeadDownSound"
)

// Notify is used for direct, synchronous communication between a hardware
// component and whatever is hosting the emulation (a CLI front-end, a GUI,
// a test harness). No package in this module implements it or raises these
// notices.
type Notify interface {
	Notify(notice Notice) error
}
