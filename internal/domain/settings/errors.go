package settings

import "errors"

var ErrSettingsNotFound = errors.New("portal settings not found")
