package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/growth/pkg/timeutil"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions pretend the command runs on another day.
type OnOptions struct {
	OnString string
	// Now defaults to time.Now.
	Now func() time.Time
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Act as if today were this date, example: --on="2025-1-2" or --on="1/2".`)
}

func (o *OnOptions) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// GetOn parses --on. A short date without a year is in the current year, or
// the previous one if that would be in the future.
func (o *OnOptions) GetOn() (*timeutil.Date, error) {
	if o.OnString == "" {
		return nil, nil
	}
	now := o.now()
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
		if err != nil {
			return nil, err
		}
		t = t.AddDate(now.Year(), 0, 0)
		if timeutil.DateOf(now).Before(timeutil.DateOf(t)) {
			t = t.AddDate(-1, 0, 0)
		}
	}
	d := timeutil.DateOf(t)
	return &d, nil
}

// Clock returns a clock reading the time of day now on the --on date, or nil
// when --on is not set.
func (o *OnOptions) Clock() (func() time.Time, error) {
	on, err := o.GetOn()
	if err != nil || on == nil {
		return nil, err
	}
	day := *on
	return func() time.Time {
		now := time.Now()
		midnight := day.In(time.Local)
		return time.Date(midnight.Year(), midnight.Month(), midnight.Day(),
			now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), time.Local)
	}, nil
}
