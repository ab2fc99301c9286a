package domain

import "errors"

var ErrAnnouncementsUnavailable = errors.New("announcements api key not configured")
var ErrAnnouncementsUpstream = errors.New("announcements upstream request failed")
