// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package sdlplay

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
)

// SetFeature implements the gui.GUI interface. The request is serviced in the
// main thread and the function waits for the result.
//
// MUST NOT be called from the #mainthread
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	scr.service <- func() {
		scr.serviceErr <- scr.serviceFeatureRequest(request, args)
	}
	return <-scr.serviceErr
}

// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) serviceFeatureRequest(request gui.FeatureReq, args []gui.FeatureReqData) (err error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			err = curated.Errorf("sdlplay: %v: %v", request, r)
		}
	}()

	switch request {
	case gui.ReqSetTitle:
		scr.title = fmt.Sprintf("%s - %s", windowTitle, args[0].(string))
		scr.updateTitle()

	case gui.ReqState:
		scr.state = args[0].(govern.State)
		scr.updateTitle()

	case gui.ReqSetScale:
		err = scr.setScale(args[0].(int))

	case gui.ReqSetVisibility:
		if args[0].(bool) {
			scr.window.Show()
		} else {
			scr.window.Hide()
		}

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return err
}
