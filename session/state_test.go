package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lifefellowship/fellowship-client/model"
)

func TestPublisher_SubscribeDeliversCurrentState(t *testing.T) {
	p := &publisher{state: State{Loading: true}}

	ch, cancel := p.subscribe()
	defer cancel()

	state := <-ch
	assert.True(t, state.Loading)
	assert.Nil(t, state.User)
}

func TestPublisher_LatestWins(t *testing.T) {
	p := &publisher{}

	ch, cancel := p.subscribe()
	defer cancel()

	user := &model.UserAccount{ID: "u1"}
	p.set(State{Loading: true})
	p.set(State{Loading: false, User: user})

	// The subscriber was never drained; it sees only the newest snapshot.
	state := <-ch
	assert.False(t, state.Loading)
	assert.Equal(t, "u1", state.User.ID)
}

func TestPublisher_CancelRemovesSubscriber(t *testing.T) {
	p := &publisher{}

	ch, cancel := p.subscribe()
	<-ch
	cancel()

	p.set(State{Loading: true})

	select {
	case <-ch:
		t.Fatal("expected no delivery after cancel")
	default:
	}
}

func TestState_Authenticated(t *testing.T) {
	assert.False(t, State{Loading: true}.Authenticated())
	assert.False(t, State{}.Authenticated())
	assert.False(t, State{Loading: true, User: &model.UserAccount{ID: "u1"}}.Authenticated())
	assert.True(t, State{User: &model.UserAccount{ID: "u1"}}.Authenticated())
}
