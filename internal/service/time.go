package service

import "time"

// now is replaced in tests to pin the default observation time.
var now = time.Now
