package unit

type PodKind int

const (
	PodNarc PodKind = iota
	PodINarc
)

func (k PodKind) String() string {
	if k == PodINarc {
		return "iNarc"
	}
	return "Narc"
}

// Pod is a homing beacon attached to one location.
type Pod struct {
	Team     int
	Location int
}

type podLists struct {
	narc, inarc               []Pod
	pendingNarc, pendingINarc []Pod
}

// AttachPod queues a pod. It becomes active at the end of the phase.
func (u *Unit) AttachPod(kind PodKind, p Pod) {
	u.mustLoc(p.Location)
	if kind == PodINarc {
		u.pods.pendingINarc = append(u.pods.pendingINarc, p)
		return
	}
	u.pods.pendingNarc = append(u.pods.pendingNarc, p)
}

func (u *Unit) ActivatePendingPods() {
	u.pods.narc = append(u.pods.narc, u.pods.pendingNarc...)
	u.pods.inarc = append(u.pods.inarc, u.pods.pendingINarc...)
	u.pods.pendingNarc = nil
	u.pods.pendingINarc = nil
}

// Pods returns the active pods of a kind.
func (u *Unit) Pods(kind PodKind) []Pod {
	if kind == PodINarc {
		return u.pods.inarc
	}
	return u.pods.narc
}

func (u *Unit) PendingPods(kind PodKind) []Pod {
	if kind == PodINarc {
		return u.pods.pendingINarc
	}
	return u.pods.pendingNarc
}

// NarcedBy reports an active pod from team.
func (u *Unit) NarcedBy(team int) bool {
	for _, p := range u.pods.narc {
		if p.Team == team {
			return true
		}
	}
	for _, p := range u.pods.inarc {
		if p.Team == team {
			return true
		}
	}
	return false
}

// purgePods drops pods at loc from all four lists.
func (u *Unit) purgePods(loc int) {
	u.pods.narc = withoutLocation(u.pods.narc, loc)
	u.pods.inarc = withoutLocation(u.pods.inarc, loc)
	u.pods.pendingNarc = withoutLocation(u.pods.pendingNarc, loc)
	u.pods.pendingINarc = withoutLocation(u.pods.pendingINarc, loc)
}

// withoutLocation returns a new slice so callers holding an earlier result
// from Pods or PendingPods keep what they saw.
func withoutLocation(pods []Pod, loc int) []Pod {
	var out []Pod
	for _, p := range pods {
		if p.Location != loc {
			out = append(out, p)
		}
	}
	return out
}
