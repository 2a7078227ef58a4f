package domain

import "sort"

// AggregateDay reduces one actor's raw events for a single day into a
// DayStatus. The first check-in and first check-out by timestamp win; later
// duplicates are tolerated here and left for the integrity auditor to flag.
// The function is pure and idempotent over its input.
func (e *Engine) AggregateDay(events []AttendanceEvent) DayStatus {
	if len(events) == 0 {
		return DayStatus{State: DayStateNone}
	}

	ordered := make([]AttendanceEvent, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].RecordedAt.Before(ordered[j].RecordedAt)
	})

	status := DayStatus{
		Date:  e.calendar.DayOf(ordered[0].RecordedAt),
		State: DayStateNone,
	}
	for _, event := range ordered {
		switch event.Action {
		case ActionCheckIn:
			if status.CheckInTime == nil {
				ts := event.RecordedAt
				status.CheckInTime = &ts
			}
		case ActionCheckOut:
			if status.CheckOutTime == nil {
				ts := event.RecordedAt
				status.CheckOutTime = &ts
			}
		}
	}

	switch {
	case status.CheckInTime != nil && status.CheckOutTime != nil && status.CheckOutTime.After(*status.CheckInTime):
		status.State = DayStateComplete
		status.HoursWorked = status.CheckOutTime.Sub(*status.CheckInTime).Hours()
	case status.CheckInTime != nil && status.CheckOutTime == nil:
		status.State = DayStatePartial
	}
	return status
}

// groupByActorDay buckets events per (actor, calendar day), keeping each
// bucket in timestamp order.
func (e *Engine) groupByActorDay(events []AttendanceEvent) map[actorDay][]AttendanceEvent {
	groups := make(map[actorDay][]AttendanceEvent)
	for _, event := range events {
		key := actorDay{actor: event.ActorID, day: e.calendar.DayKey(event.RecordedAt)}
		groups[key] = append(groups[key], event)
	}
	for key, bucket := range groups {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].RecordedAt.Before(bucket[j].RecordedAt)
		})
		groups[key] = bucket
	}
	return groups
}

type actorDay struct {
	actor string
	day   string
}
