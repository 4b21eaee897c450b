package types

import "fmt"

// AnsweredIndex is the exported form of a credited (quiz, question) marker.
type AnsweredIndex struct {
	QuizId        uint64 `json:"quiz_id"`
	QuestionIndex uint32 `json:"question_index"`
}

// GenesisState defines the quiz module's genesis state.
type GenesisState struct {
	Params          Params          `json:"params"`
	Topics          []Topic         `json:"topics"`
	QuizSets        []QuizSet       `json:"quiz_sets"`
	QuestionBlocks  []QuestionBlock `json:"question_blocks"`
	AnsweredIndexes []AnsweredIndex `json:"answered_indexes"`
	NextQuizId      uint64          `json:"next_quiz_id"`
}

// DefaultGenesis returns the default quiz genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		NextQuizId: 1,
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return ErrInvalidParams.Wrap(err.Error())
	}
	if gs.NextQuizId == 0 {
		return ErrInvalidGenesis.Wrap("next quiz id must be positive")
	}

	seenTopics := make(map[string]struct{}, len(gs.Topics))
	for _, topic := range gs.Topics {
		if topic.Name == "" {
			return ErrInvalidGenesis.Wrap("topic name cannot be empty")
		}
		if _, ok := seenTopics[topic.Name]; ok {
			return ErrInvalidGenesis.Wrapf("duplicate topic %q", topic.Name)
		}
		seenTopics[topic.Name] = struct{}{}
	}

	seenQuizzes := make(map[uint64]*QuizSet, len(gs.QuizSets))
	seenIdentity := make(map[string]struct{}, len(gs.QuizSets))
	for i := range gs.QuizSets {
		quiz := gs.QuizSets[i]
		if quiz.Id == 0 {
			return ErrInvalidGenesis.Wrap("quiz id must be positive")
		}
		if quiz.Id >= gs.NextQuizId {
			return ErrInvalidGenesis.Wrapf("quiz id %d not below next id %d", quiz.Id, gs.NextQuizId)
		}
		if _, ok := seenQuizzes[quiz.Id]; ok {
			return ErrInvalidGenesis.Wrapf("duplicate quiz id %d", quiz.Id)
		}
		if err := quiz.Validate(); err != nil {
			return ErrInvalidGenesis.Wrapf("quiz %d: %v", quiz.Id, err)
		}
		if quiz.QuestionCount > gs.Params.MaxQuestionCount {
			return ErrInvalidGenesis.Wrapf("quiz %d question count %d above max %d",
				quiz.Id, quiz.QuestionCount, gs.Params.MaxQuestionCount)
		}
		if quiz.Topic != "" {
			if _, ok := seenTopics[quiz.Topic]; !ok {
				return ErrInvalidGenesis.Wrapf("quiz %d references unknown topic %q", quiz.Id, quiz.Topic)
			}
		}
		identity := fmt.Sprintf("%s/%d", quiz.Authority, quiz.UniqueId)
		if _, ok := seenIdentity[identity]; ok {
			return ErrInvalidGenesis.Wrapf("duplicate (authority, unique_id) for quiz %d", quiz.Id)
		}
		seenIdentity[identity] = struct{}{}
		seenQuizzes[quiz.Id] = &gs.QuizSets[i]
	}

	seenBlocks := make(map[uint64]map[uint32]struct{})
	for _, block := range gs.QuestionBlocks {
		quiz, ok := seenQuizzes[block.QuizId]
		if !ok {
			return ErrInvalidGenesis.Wrapf("question block references unknown quiz %d", block.QuizId)
		}
		if err := block.Validate(); err != nil {
			return ErrInvalidGenesis.Wrapf("question block %d/%d: %v", block.QuizId, block.QuestionIndex, err)
		}
		if block.QuestionIndex > quiz.QuestionCount {
			return ErrInvalidGenesis.Wrapf("question block index %d above quiz %d count %d",
				block.QuestionIndex, block.QuizId, quiz.QuestionCount)
		}
		if seenBlocks[block.QuizId] == nil {
			seenBlocks[block.QuizId] = make(map[uint32]struct{})
		}
		if _, ok := seenBlocks[block.QuizId][block.QuestionIndex]; ok {
			return ErrInvalidGenesis.Wrapf("duplicate question block %d/%d", block.QuizId, block.QuestionIndex)
		}
		seenBlocks[block.QuizId][block.QuestionIndex] = struct{}{}
	}

	creditedPerQuiz := make(map[uint64]map[uint32]struct{})
	for _, idx := range gs.AnsweredIndexes {
		quiz, ok := seenQuizzes[idx.QuizId]
		if !ok {
			return ErrInvalidGenesis.Wrapf("answered index references unknown quiz %d", idx.QuizId)
		}
		if idx.QuestionIndex == 0 || idx.QuestionIndex > quiz.QuestionCount {
			return ErrInvalidGenesis.Wrapf("answered index %d out of bounds for quiz %d", idx.QuestionIndex, idx.QuizId)
		}
		if creditedPerQuiz[idx.QuizId] == nil {
			creditedPerQuiz[idx.QuizId] = make(map[uint32]struct{})
		}
		if _, ok := creditedPerQuiz[idx.QuizId][idx.QuestionIndex]; ok {
			return ErrInvalidGenesis.Wrapf("duplicate answered index %d/%d", idx.QuizId, idx.QuestionIndex)
		}
		creditedPerQuiz[idx.QuizId][idx.QuestionIndex] = struct{}{}
	}
	for id, quiz := range seenQuizzes {
		if int(quiz.CorrectAnswersCount) != len(creditedPerQuiz[id]) {
			return ErrInvalidGenesis.Wrapf("quiz %d progress %d does not match %d answered markers",
				id, quiz.CorrectAnswersCount, len(creditedPerQuiz[id]))
		}
	}
	return nil
}
