package bench

// ArenaListener distributes the arena events to several listeners,
// for example a terminal view and a log
type ArenaListener struct {
	listeners []ListenerLike
}

func NewArenaListener(listeners ...ListenerLike) *ArenaListener {
	al := &ArenaListener{
		listeners: make([]ListenerLike, 0, len(listeners)),
	}
	for _, l := range listeners {
		if l != nil {
			al.listeners = append(al.listeners, l)
		}
	}
	return al
}

func (al *ArenaListener) each(f func(ListenerLike)) {
	for _, l := range al.listeners {
		f(l)
	}
}

func (al *ArenaListener) SetRow(row int) {
	al.each(func(l ListenerLike) { l.SetRow(row) })
}

func (al *ArenaListener) OnStart() {
	al.each(func(l ListenerLike) { l.OnStart() })
}

func (al *ArenaListener) OnGameStart(info VersusWorkerInfo) {
	al.each(func(l ListenerLike) { l.OnGameStart(info) })
}

func (al *ArenaListener) OnMoveMade(info VersusWorkerInfo) {
	al.each(func(l ListenerLike) { l.OnMoveMade(info) })
}

func (al *ArenaListener) OnFinishedGame(info VersusWorkerInfo) {
	al.each(func(l ListenerLike) { l.OnFinishedGame(info) })
}

func (al *ArenaListener) OnFinishedWork(info VersusWorkerInfo) {
	al.each(func(l ListenerLike) { l.OnFinishedWork(info) })
}

func (al *ArenaListener) Summary(summary VersusSummaryInfo) {
	al.each(func(l ListenerLike) { l.Summary(summary) })
}

func (al *ArenaListener) OnEnd() {
	al.each(func(l ListenerLike) { l.OnEnd() })
}

func (al *ArenaListener) Clone() ListenerLike {
	clone := &ArenaListener{listeners: make([]ListenerLike, len(al.listeners))}
	for i, l := range al.listeners {
		clone.listeners[i] = l.Clone()
	}
	return clone
}
