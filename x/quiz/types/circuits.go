package types

// Circuit names the quiz module queues on the compute gateway. The evaluator
// cluster dispatches on these.
const (
	CircuitValidateAnswer  = "validate_answer"
	CircuitEncryptQuestion = "encrypt_question"
	CircuitDecryptQuestion = "decrypt_question"
)

// Circuits lists every circuit the quiz module handles results for.
func Circuits() []string {
	return []string{CircuitValidateAnswer, CircuitEncryptQuestion, CircuitDecryptQuestion}
}
