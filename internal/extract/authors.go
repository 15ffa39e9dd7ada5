package extract

import "fmt"

// mergeAuthors pairs author names with email addresses by index, rewriting
// each Author entry to "Name <email>". It only fires when author_email was
// present; on a count mismatch the Author list is left exactly as parsed and
// a warning describes why.
func mergeAuthors(md *Metadata) *Warning {
	if len(md.AuthorEmail) == 0 {
		return nil
	}
	if len(md.Author) != len(md.AuthorEmail) {
		return &Warning{
			Field: "author",
			Detail: fmt.Sprintf("%d author(s) but %d email(s), leaving authors unmerged",
				len(md.Author), len(md.AuthorEmail)),
		}
	}

	merged := make([]string, len(md.Author))
	for i, name := range md.Author {
		merged[i] = fmt.Sprintf("%s <%s>", name, md.AuthorEmail[i])
	}
	md.Author = merged
	return nil
}
