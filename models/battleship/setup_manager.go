package battleship

import (
	"sync"

	cerr "github.com/saeidalz13/battleship-setup/internal/error"
)

type SetupManager interface {
	CreateSetup() (*Setup, error)
	GetSetup(setupUuid string) (*Setup, error)
	TerminateSetup(setupUuid string)
}

type BattleshipSetupManager struct {
	setups      map[string]*Setup
	boardWidth  int
	boardHeight int
	mu          sync.RWMutex
}

var _ SetupManager = (*BattleshipSetupManager)(nil)

func NewBattleshipSetupManager(boardWidth, boardHeight int) *BattleshipSetupManager {
	return &BattleshipSetupManager{
		setups:      make(map[string]*Setup, 10),
		boardWidth:  boardWidth,
		boardHeight: boardHeight,
	}
}

func (bsm *BattleshipSetupManager) CreateSetup() (*Setup, error) {
	setup, err := NewSetup(bsm.boardWidth, bsm.boardHeight)
	if err != nil {
		return nil, err
	}

	bsm.mu.Lock()
	bsm.setups[setup.Uuid()] = setup
	bsm.mu.Unlock()

	return setup, nil
}

func (bsm *BattleshipSetupManager) GetSetup(setupUuid string) (*Setup, error) {
	bsm.mu.RLock()
	setup, prs := bsm.setups[setupUuid]
	bsm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrSetupNotExists(setupUuid)
	}

	return setup, nil
}

func (bsm *BattleshipSetupManager) TerminateSetup(setupUuid string) {
	bsm.mu.Lock()
	delete(bsm.setups, setupUuid)
	bsm.mu.Unlock()
}

func (bsm *BattleshipSetupManager) Len() int {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()

	return len(bsm.setups)
}
