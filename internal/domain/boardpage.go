package domain

// JoinedRow is one row of the board page read: a left outer join across
// boards, lists and tasks. A board with no lists yields nil list and task
// fields; a list with no tasks yields nil task fields.
type JoinedRow struct {
	BoardID     string  `json:"boardId"`
	BoardName   string  `json:"boardName"`
	ListID      *string `json:"listId"`
	ListTitle   *string `json:"listTitle"`
	ListOrder   *int    `json:"listOrder"`
	TaskID      *string `json:"taskId"`
	TaskContent *string `json:"taskContent"`
	TaskOrder   *int    `json:"taskOrder"`
}

// BoardPage is the initial payload for a user's board view. The client
// regroups Rows into a board/list/task tree.
type BoardPage struct {
	Username string         `json:"username"`
	Boards   []BoardSummary `json:"boards"`
	Rows     []JoinedRow    `json:"rows"`
}
