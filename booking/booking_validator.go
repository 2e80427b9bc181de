package booking

import "time"

// DraftInput is the raw form input for a new booking. Date is "YYYY-MM-DD",
// times are zero-padded 24-hour "HH:MM".
type DraftInput struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Details   string `json:"details"`
}

// Draft is a validated, normalized booking candidate. Date is the
// reference-midnight instant of the requested day.
type Draft struct {
	Date      time.Time
	StartTime string
	EndTime   string
	Details   string
}

// ValidateDraft checks a candidate booking against the current instant. All
// rules are evaluated independently and every violated field is reported;
// nothing short-circuits.
func ValidateDraft(in DraftInput, now time.Time, loc *time.Location) (Draft, FieldErrors) {
	errs := FieldErrors{}

	if in.Date == "" {
		errs.Add("date", "Date is required.")
	}
	if in.StartTime == "" {
		errs.Add("startTime", "Start time is required.")
	}
	if in.EndTime == "" {
		errs.Add("endTime", "End time is required.")
	}

	var day time.Time
	dayValid := false

	if in.Date != "" {
		d, err := time.ParseInLocation("2006-01-02", in.Date, loc)
		if err != nil {
			errs.Add("date", "Invalid date or time format.")
		} else {
			day = d
			dayValid = true
		}
	}

	startMin := -1
	if in.StartTime != "" {
		m, err := ParseMinute(in.StartTime)
		if err != nil {
			errs.Add("date", "Invalid date or time format.")
		} else {
			startMin = m
		}
	}

	endMin := -1
	if in.EndTime != "" {
		m, err := ParseMinute(in.EndTime)
		if err != nil {
			errs.Add("date", "Invalid date or time format.")
		} else {
			endMin = m
		}
	}

	if dayValid {
		today := NormalizeToMidnight(now, loc)

		if day.Before(today) {
			errs.Add("date", "Cannot book appointments in the past.")
		}

		// booking for today must start after the current minute
		if day.Equal(today) && startMin >= 0 && startMin <= MinuteOfDay(now, loc) {
			errs.Add("startTime", "Start time cannot be in the past for today.")
		}
	}

	if startMin >= 0 && endMin >= 0 && startMin >= endMin {
		errs.Add("endTime", "End time must be after start time.")
	}

	if len(errs) > 0 {
		return Draft{}, errs
	}

	return Draft{
		Date:      day,
		StartTime: FormatMinute(startMin),
		EndTime:   FormatMinute(endMin),
		Details:   in.Details,
	}, nil
}

// UpdateInput is the raw form input for modifying an existing booking. The
// booking's date and owner are immutable.
type UpdateInput struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Details   string `json:"details"`
}

// ValidateUpdate checks the mutable fields of a booking update. Past-date
// rules do not apply here, only presence and ordering.
func ValidateUpdate(in UpdateInput) (UpdateInput, FieldErrors) {
	errs := FieldErrors{}

	if in.StartTime == "" {
		errs.Add("startTime", "Start time is required.")
	}
	if in.EndTime == "" {
		errs.Add("endTime", "End time is required.")
	}

	startMin := -1
	if in.StartTime != "" {
		m, err := ParseMinute(in.StartTime)
		if err != nil {
			errs.Add("startTime", "Invalid time format.")
		} else {
			startMin = m
		}
	}

	endMin := -1
	if in.EndTime != "" {
		m, err := ParseMinute(in.EndTime)
		if err != nil {
			errs.Add("endTime", "Invalid time format.")
		} else {
			endMin = m
		}
	}

	if startMin >= 0 && endMin >= 0 && startMin >= endMin {
		errs.Add("endTime", "End time must be after start time.")
	}

	if len(errs) > 0 {
		return UpdateInput{}, errs
	}

	return UpdateInput{
		StartTime: FormatMinute(startMin),
		EndTime:   FormatMinute(endMin),
		Details:   in.Details,
	}, nil
}
