package locale

import (
	"golang.org/x/text/language"
)

// SortableUTC is the layout all date-times are written with.
const SortableUTC = "2006-01-02 15:04:05.999999999Z07:00"

var (
	mdyDates = []string{"01/02/2006", "1/2/2006"}
	dmyDates = []string{"02/01/2006", "2/1/2006"}
	dotDates = []string{"02.01.2006", "2.1.2006"}
	dshDates = []string{"02-01-2006", "2-1-2006"}
	ymdDates = []string{"2006/01/02", "2006/1/2"}
)

// commonDates are accepted in every locale, after the locale's own layouts.
var commonDates = []string{
	SortableUTC,
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

var timeSuffixes = []string{"", " 15:04:05", " 15:04", " 3:04:05 PM", " 3:04 PM"}

var dateOrders = map[string][]string{
	"fr": dmyDates,
	"es": dmyDates,
	"it": dmyDates,
	"pt": dmyDates,
	"el": dmyDates,
	"de": dotDates,
	"ru": dotDates,
	"pl": dotDates,
	"cs": dotDates,
	"fi": dotDates,
	"nb": dotDates,
	"tr": dotDates,
	"uk": dotDates,
	"nl": dshDates,
	"da": dshDates,
	"ja": ymdDates,
	"zh": ymdDates,
	"ko": ymdDates,
	"hu": ymdDates,
}

func dateLayouts(tag language.Tag) []string {
	base, _ := tag.Base()
	if base.String() == "en" {
		region, conf := tag.Region()
		if conf == language.Exact && region.String() != "US" {
			return dmyDates
		}
		return mdyDates
	}
	if l, ok := dateOrders[base.String()]; ok {
		return l
	}
	return mdyDates
}

// layouts lists, in order, every layout ParseTime tries for l.
func (l *Locale) layouts() []string {
	res := make([]string, 0, len(l.dates)*len(timeSuffixes)+len(commonDates))
	for _, d := range l.dates {
		for _, s := range timeSuffixes {
			res = append(res, d+s)
		}
	}
	return append(res, commonDates...)
}
