package queue

import (
	"github.com/maheshrc27/crosspost/internal/service"
)

type Queue struct {
	ps service.PostService
}

func NewQueue(ps service.PostService) *Queue {
	return &Queue{
		ps: ps,
	}
}

const TaskTypeSimulatePost = "post:simulate"
