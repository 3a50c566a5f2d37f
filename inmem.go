package gomicroauth

type userRepository struct {
	users map[ID]*User
}

func NewUserRepository() Repository {
	return &userRepository{users: map[ID]*User{}}
}

func (repo *userRepository) FindByID(id ID) (*User, error) {
	if u, ok := repo.users[id]; ok {
		return u, nil
	}
	return nil, ErrNotFound
}

func (repo *userRepository) FindByName(username string) (*User, error) {
	for _, v := range repo.users {
		if v.Username == username {
			return v, nil
		}
	}
	return nil, ErrNotFound
}

func (repo *userRepository) FindByEmail(email string) (*User, error) {
	for _, v := range repo.users {
		if v.Email == email {
			return v, nil
		}
	}
	return nil, ErrNotFound
}

func (repo *userRepository) Store(u *User) error {
	repo.users[u.ID] = u
	return nil
}
